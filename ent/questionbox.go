// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"vidquiz/ent/questionbox"
	"vidquiz/ent/quizquestion"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// QuestionBox is the model entity for the QuestionBox schema.
type QuestionBox struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Left edge, normalized 0-1
	X float64 `json:"x,omitempty"`
	// Top edge, normalized 0-1
	Y float64 `json:"y,omitempty"`
	// Width holds the value of the "width" field.
	Width float64 `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height float64 `json:"height,omitempty"`
	// What the box contains
	Label string `json:"label,omitempty"`
	// Whether this box answers the question
	Correct bool `json:"correct,omitempty"`
	// Detection confidence, 0-1
	Confidence float64 `json:"confidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionBoxQuery when eager-loading is set.
	Edges               QuestionBoxEdges `json:"edges"`
	quiz_question_boxes *int
	selectValues        sql.SelectValues
}

// QuestionBoxEdges holds the relations/edges for other nodes in the graph.
type QuestionBoxEdges struct {
	// Question holds the value of the question edge.
	Question *QuizQuestion `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionBoxEdges) QuestionOrErr() (*QuizQuestion, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: quizquestion.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionBox) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionbox.FieldCorrect:
			values[i] = new(sql.NullBool)
		case questionbox.FieldX, questionbox.FieldY, questionbox.FieldWidth, questionbox.FieldHeight, questionbox.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case questionbox.FieldID:
			values[i] = new(sql.NullInt64)
		case questionbox.FieldLabel:
			values[i] = new(sql.NullString)
		case questionbox.ForeignKeys[0]: // quiz_question_boxes
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionBox fields.
func (_m *QuestionBox) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionbox.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionbox.FieldX:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field x", values[i])
			} else if value.Valid {
				_m.X = value.Float64
			}
		case questionbox.FieldY:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field y", values[i])
			} else if value.Valid {
				_m.Y = value.Float64
			}
		case questionbox.FieldWidth:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = value.Float64
			}
		case questionbox.FieldHeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = value.Float64
			}
		case questionbox.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case questionbox.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case questionbox.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case questionbox.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field quiz_question_boxes", value)
			} else if value.Valid {
				_m.quiz_question_boxes = new(int)
				*_m.quiz_question_boxes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionBox.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionBox) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the QuestionBox entity.
func (_m *QuestionBox) QueryQuestion() *QuizQuestionQuery {
	return NewQuestionBoxClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this QuestionBox.
// Note that you need to call QuestionBox.Unwrap() before calling this method if this QuestionBox
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionBox) Update() *QuestionBoxUpdateOne {
	return NewQuestionBoxClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionBox entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionBox) Unwrap() *QuestionBox {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionBox is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionBox) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionBox(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("x=")
	builder.WriteString(fmt.Sprintf("%v", _m.X))
	builder.WriteString(", ")
	builder.WriteString("y=")
	builder.WriteString(fmt.Sprintf("%v", _m.Y))
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionBoxes is a parsable slice of QuestionBox.
type QuestionBoxes []*QuestionBox
