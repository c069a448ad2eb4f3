package usecase

import (
	"minwon-analytics/internal/analysis"
	"minwon-analytics/internal/analysis/interpreter"
)

func (uc *implUseCase) Interpret(query string) analysis.Intent {
	return interpreter.Interpret(query, uc.now())
}
