package model

import "time"

type Campaign struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupQuestionSummary is the list shape: the serialized survey definition
// and auxiliary payload are omitted.
type GroupQuestionSummary struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CampaignID int64     `json:"campaignId"`
	CreatedAt  time.Time `json:"createdAt"`
}

type GroupQuestion struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CampaignID int64     `json:"campaignId"`
	SurveyJSON string    `json:"surveyJson"`
	Data       *string   `json:"data"`
	CreatedAt  time.Time `json:"createdAt"`
}

type QuestionInfo struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	IsRequired     bool      `json:"isRequired"`
	Choices        *string   `json:"choices"`
	VisibleIf      *string   `json:"visibleIf"`
	OtherText      *string   `json:"otherText"`
	GroupID        int64     `json:"groupId"`
	HasOther       bool      `json:"hasOther"`
	QuestionTypeID int64     `json:"questionTypeId"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Question struct {
	QuestionInfo
	Answers []AnswerEntry `json:"answers"`
}

type AnswerEntry struct {
	ID           int64     `json:"id"`
	QuestionName string    `json:"questionName"`
	Value        any       `json:"value"`
	Other        *string   `json:"other"`
	CreatedAt    time.Time `json:"createdAt"`
}

type User struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
}

type LoginResult struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type SaveAnswersResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
