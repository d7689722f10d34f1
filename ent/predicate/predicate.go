// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuestionBox is the predicate function for questionbox builders.
type QuestionBox func(*sql.Selector)

// QuizQuestion is the predicate function for quizquestion builders.
type QuizQuestion func(*sql.Selector)
