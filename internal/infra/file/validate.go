package file

import (
	"fmt"
	"strings"

	"trivia/internal/domain"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims prompts, hints and ids and validates a bank. Accepted
// answers are not trimmed; a blank one would match every input, so it is rejected.
func NormalizeBank(bank domain.Bank) (domain.Bank, error) {
	collector := &issueCollector{}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	questions := make([]domain.Question, 0, len(bank.Questions))
	for i, question := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.ID = strings.TrimSpace(question.ID)
		if question.ID == "" {
			question.ID = fmt.Sprintf("q%d", i+1)
		}
		if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		}
		seenIDs[question.ID] = struct{}{}

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Hint = strings.TrimSpace(question.Hint)

		if len(question.Answers) == 0 {
			collector.add(prefix+".answer", "must include at least one entry")
		}
		answers := make([]string, 0, len(question.Answers))
		for answerIndex, answer := range question.Answers {
			// Answers are kept as written: padding like " au " narrows substring matches.
			if strings.TrimSpace(answer) == "" {
				collector.add(fmt.Sprintf("%s.answer[%d]", prefix, answerIndex), "is required")
				continue
			}
			answers = append(answers, answer)
		}
		question.Answers = answers
		questions = append(questions, question)
	}
	bank.Questions = questions

	if err := collector.result(); err != nil {
		return domain.Bank{}, err
	}
	return bank, nil
}
