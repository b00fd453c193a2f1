package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fitfusion/fitfusion/internal/repository"
)

// MonthlyFee is the flat membership fee charged per run.
var MonthlyFee = decimal.NewFromInt(25)

type BillingService struct {
	memberRepo repository.MemberRepository
}

func NewBillingService(memberRepo repository.MemberRepository) *BillingService {
	return &BillingService{
		memberRepo: memberRepo,
	}
}

// ProcessFees charges every member the monthly fee and returns how many were
// charged. Balances are allowed to go negative; the store does the
// subtraction. A member that fails to charge is logged and skipped.
func (s *BillingService) ProcessFees() (int, error) {
	members, err := s.memberRepo.All()
	if err != nil {
		return 0, err
	}

	charged := 0
	for _, member := range members {
		err = s.memberRepo.ChargeFee(member.ID, MonthlyFee)
		if err != nil {
			slog.Error("fee charge failed", "member_id", member.ID, "error", err)
			continue
		}
		charged++
	}

	return charged, nil
}
