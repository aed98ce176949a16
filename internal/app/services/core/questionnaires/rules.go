package questionnaires

import (
	"modifications-service/internal/app/models"
)

// ruleSatisfied evaluates one declarative visibility predicate against the
// merged state of the referenced question. A rule pointing at an unknown or
// unanswered question evaluates false.
func ruleSatisfied(rule models.ConditionalRule, questionnaire *models.Questionnaire) bool {
	parent := questionnaire.Find(rule.ParentQuestionID)
	if parent == nil {
		return false
	}
	for _, value := range parent.AnswerValues() {
		for _, expected := range rule.ExpectedValues {
			if value == expected {
				return true
			}
		}
	}
	return false
}

// questionVisible reports whether a question should currently be shown and
// validated. Questions without rules are always visible; a question with
// rules is visible only when every rule is satisfied.
func questionVisible(question *models.AnsweredQuestion, questionnaire *models.Questionnaire) bool {
	for _, rule := range question.Rules {
		if !ruleSatisfied(rule, questionnaire) {
			return false
		}
	}
	return true
}
