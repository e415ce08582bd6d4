package model

import "time"

type ReviewModel struct {
	ID                int64
	ProductID         int64
	BuyerID           int64
	Rating            int16
	Comment           string
	ReviewerName      string
	ReviewerAvatarURL *string
	CreatedAt         time.Time
}

type CreateReviewModel struct {
	ProductID int64
	BuyerID   int64
	Rating    int16
	Comment   string
}
