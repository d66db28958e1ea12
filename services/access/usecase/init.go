package usecase

import (
	"github.com/superblog/auth/services/access"
)

// AccessUC implements the access gate usecase
type AccessUC struct {
	accessRepo access.AccessRepo
	billingGW  access.BillingGW
}

// NewAccessUC creates a new access usecase
func NewAccessUC(accessRepo access.AccessRepo, billingGW access.BillingGW) *AccessUC {
	return &AccessUC{
		accessRepo: accessRepo,
		billingGW:  billingGW,
	}
}
