package usecases

import "time"

func (uc *ListPoliciesUseCase) SetClock(now func() time.Time) { uc.now = now }

func (uc *CheckArticleUseCase) SetClock(now func() time.Time) { uc.now = now }
