package services

import (
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/supplier_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	options := []SupplierAccountServiceOption{}
	if repos.StatementCache != nil {
		options = append(options, WithStatementCache(repos.StatementCache))
	}

	return &portssvc.ServiceContainer{
		SupplierAccount: NewSupplierAccountService(
			repos.SupplierRepo,
			repos.PurchaseRepo,
			repos.PaymentVoucherRepo,
			options...,
		),
	}
}
