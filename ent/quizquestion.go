// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"
	"vidquiz/ent/quizquestion"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// QuizQuestion is the model entity for the QuizQuestion schema.
type QuizQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable question identifier assigned at generation
	QuestionID string `json:"question_id,omitempty"`
	// Course the source video belongs to
	CourseID string `json:"course_id,omitempty"`
	// Source video the question was generated from
	VideoURL string `json:"video_url,omitempty"`
	// Anchor position in the video, seconds
	Timestamp int `json:"timestamp,omitempty"`
	// The text shown to the learner
	Question string `json:"question,omitempty"`
	// Canonical hyphenated question type
	Type string `json:"type,omitempty"`
	// JSON array of the four options, multiple-choice only
	Options *string `json:"options,omitempty"`
	// Type-dependent answer encoding
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Why the answer is correct
	Explanation string `json:"explanation,omitempty"`
	// Whether rendering needs more than text
	HasVisualAsset bool `json:"has_visual_asset,omitempty"`
	// JSON blob of type-specific structure and provenance
	Metadata *string `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizQuestionQuery when eager-loading is set.
	Edges        QuizQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizQuestionEdges holds the relations/edges for other nodes in the graph.
type QuizQuestionEdges struct {
	// Boxes holds the value of the boxes edge.
	Boxes []*QuestionBox `json:"boxes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BoxesOrErr returns the Boxes value or an error if the edge
// was not loaded in eager-loading.
func (e QuizQuestionEdges) BoxesOrErr() ([]*QuestionBox, error) {
	if e.loadedTypes[0] {
		return e.Boxes, nil
	}
	return nil, &NotLoadedError{edge: "boxes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldHasVisualAsset:
			values[i] = new(sql.NullBool)
		case quizquestion.FieldID, quizquestion.FieldTimestamp:
			values[i] = new(sql.NullInt64)
		case quizquestion.FieldQuestionID, quizquestion.FieldCourseID, quizquestion.FieldVideoURL, quizquestion.FieldQuestion, quizquestion.FieldType, quizquestion.FieldOptions, quizquestion.FieldCorrectAnswer, quizquestion.FieldExplanation, quizquestion.FieldMetadata:
			values[i] = new(sql.NullString)
		case quizquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizQuestion fields.
func (_m *QuizQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizquestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case quizquestion.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case quizquestion.FieldVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_url", values[i])
			} else if value.Valid {
				_m.VideoURL = value.String
			}
		case quizquestion.FieldTimestamp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = int(value.Int64)
			}
		case quizquestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case quizquestion.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case quizquestion.FieldOptions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value.Valid {
				_m.Options = new(string)
				*_m.Options = value.String
			}
		case quizquestion.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case quizquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case quizquestion.FieldHasVisualAsset:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_visual_asset", values[i])
			} else if value.Valid {
				_m.HasVisualAsset = value.Bool
			}
		case quizquestion.FieldMetadata:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value.Valid {
				_m.Metadata = new(string)
				*_m.Metadata = value.String
			}
		case quizquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *QuizQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBoxes queries the "boxes" edge of the QuizQuestion entity.
func (_m *QuizQuestion) QueryBoxes() *QuestionBoxQuery {
	return NewQuizQuestionClient(_m.config).QueryBoxes(_m)
}

// Update returns a builder for updating this QuizQuestion.
// Note that you need to call QuizQuestion.Unwrap() before calling this method if this QuizQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizQuestion) Update() *QuizQuestionUpdateOne {
	return NewQuizQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizQuestion) Unwrap() *QuizQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("QuizQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("video_url=")
	builder.WriteString(_m.VideoURL)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timestamp))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	if v := _m.Options; v != nil {
		builder.WriteString("options=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("has_visual_asset=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasVisualAsset))
	builder.WriteString(", ")
	if v := _m.Metadata; v != nil {
		builder.WriteString("metadata=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuizQuestions is a parsable slice of QuizQuestion.
type QuizQuestions []*QuizQuestion
