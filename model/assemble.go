package model

import (
	"time"

	"github.com/thomashuynhqn/Survey-API/log"
)

// CommentSuffix marks an answer whose choice carries a free-text
// elaboration. Downstream consumers match on the exact string.
const CommentSuffix = "-Comment"

// QuestionAnswerRow is one row of the questions-to-answers left join:
// question columns are always set, answer columns only when AnswerID is
// non-nil.
type QuestionAnswerRow struct {
	ID             int64
	Name           string
	Title          string
	IsRequired     int64
	Choices        *string
	VisibleIf      *string
	OtherText      *string
	GroupID        int64
	HasOther       int64
	QuestionTypeID int64
	Type           string
	CreatedAt      time.Time

	AnswerID        *int64
	AnswerName      *string
	AnswerValue     *string
	AnswerCreatedAt *time.Time
}

// AssembleQuestions folds the joined row set into questions, each carrying
// its answers in encounter order. Rows arrive sorted by question id;
// lookups go through a map so repeated answer rows for one question cost
// nothing extra.
func AssembleQuestions(rows []QuestionAnswerRow) []Question {
	questions := []Question{}
	index := map[int64]int{}

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			questions = append(questions, Question{
				QuestionInfo: QuestionInfo{
					ID:             row.ID,
					Name:           row.Name,
					Title:          row.Title,
					IsRequired:     row.IsRequired != 0,
					Choices:        row.Choices,
					VisibleIf:      row.VisibleIf,
					OtherText:      row.OtherText,
					GroupID:        row.GroupID,
					HasOther:       row.HasOther != 0,
					QuestionTypeID: row.QuestionTypeID,
					Type:           row.Type,
					CreatedAt:      row.CreatedAt,
				},
				Answers: []AnswerEntry{},
			})
			i = len(questions) - 1
			index[row.ID] = i
		}

		if row.AnswerID == nil {
			continue
		}

		entry := AnswerEntry{ID: *row.AnswerID}
		if row.AnswerName != nil {
			entry.QuestionName = *row.AnswerName
		}
		if row.AnswerCreatedAt != nil {
			entry.CreatedAt = *row.AnswerCreatedAt
		}

		if row.AnswerValue != nil {
			value, warn := DecodeValue(*row.AnswerValue)
			if warn != nil {
				log.Warnf("questions.assemble.parse_value: %s (%q)", warn, *row.AnswerValue)
			}
			switch value.Kind {
			case ChoiceValue:
				entry.Value = value.Answer
				if value.HasOther {
					other := value.Other
					entry.Other = &other
					entry.QuestionName += CommentSuffix
				}
			default:
				entry.Value = value.Scalar
			}
		}

		questions[i].Answers = append(questions[i].Answers, entry)
	}

	return questions
}
