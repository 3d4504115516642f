package api

import (
	"bytes"
	"fmt"
	"time"
)

type (
	// User is a public user record.
	User struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	// Answer is an answer to a question.
	Answer struct {
		ID         int    `json:"id"`
		Content    string `json:"content"`
		CreateDate Time   `json:"create_date"`
		User       *User  `json:"user"`
		QuestionID int    `json:"question_id"`
		ModifyDate *Time  `json:"modify_date"`
		Voter      []User `json:"voter"`
	}

	// Question is a question with its answers.
	Question struct {
		ID         int      `json:"id"`
		Subject    string   `json:"subject"`
		Content    string   `json:"content"`
		CreateDate Time     `json:"create_date"`
		Answers    []Answer `json:"answers"`
		User       *User    `json:"user"`
		ModifyDate *Time    `json:"modify_date"`
		Voter      []User   `json:"voter"`
	}

	// QuestionList is one page of questions.
	QuestionList struct {
		Total        int        `json:"total"`
		QuestionList []Question `json:"question_list"`
	}

	// QuestionQuery selects a page of questions.
	QuestionQuery struct {
		Page    int    `json:"page"`
		Size    int    `json:"size"`
		Keyword string `json:"keyword"`
	}

	// QuestionCreate holds a new question.
	QuestionCreate struct {
		Subject string `json:"subject"`
		Content string `json:"content"`
	}

	// QuestionUpdate edits a question.
	QuestionUpdate struct {
		QuestionID int    `json:"question_id"`
		Subject    string `json:"subject"`
		Content    string `json:"content"`
	}

	// AnswerUpdate edits an answer.
	AnswerUpdate struct {
		AnswerID int    `json:"answer_id"`
		Content  string `json:"content"`
	}

	// UserCreate registers a user.
	UserCreate struct {
		Username  string `json:"username"`
		Password1 string `json:"password1"`
		Password2 string `json:"password2"`
		Email     string `json:"email"`
	}

	// LoginForm is the password grant form.
	LoginForm struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	// Token is the login response.
	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Username    string `json:"username"`
	}

	questionRef struct {
		QuestionID int `json:"question_id"`
	}

	answerRef struct {
		AnswerID int `json:"answer_id"`
	}

	answerCreate struct {
		Content string `json:"content"`
	}
)

// DefaultPageSize is the server side default page size.
const DefaultPageSize = 10

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999"}

// Time accepts both zoned and naive ISO timestamps; naive ones are read as UTC.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	text := string(bytes.Trim(data, `"`))
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("invalid time: %s", data)
}
