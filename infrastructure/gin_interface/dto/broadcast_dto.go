package dto

import "github.com/laiba2005shahzad/BuildWAI/domain"

type UpdateRequest struct {
	Language string `json:"language" binding:"required"`
}

type UpdateResponse struct {
	Message string `json:"message"`
}

type NewsResponse struct {
	News     []domain.AuthenticItem `json:"news"`
	VideoURL *string                `json:"video_url"`
}

type StatusResponse struct {
	Status            string `json:"status"`
	AvatarInstalled   bool   `json:"sadtalker_installed"`
	AvatarImagesOK    bool   `json:"avatar_images_ok"`
	EnglishNewsCount  int    `json:"english_news_count"`
	UrduNewsCount     int    `json:"urdu_news_count"`
	EnglishVideoReady bool   `json:"english_video"`
	UrduVideoReady    bool   `json:"urdu_video"`
}
