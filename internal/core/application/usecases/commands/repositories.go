// Package commands contains business operations that change the state of the
// ordering platform. Each command is an immutable, validated request object
// paired with a handler that executes it inside a unit of work.
//
// Handlers depend on narrow unit of work interfaces declared here, so each
// handler sees only the repositories it actually touches. The postgres
// adapter's unit of work satisfies every interface in this file.
package commands

import (
	"context"

	"cctexpress/internal/core/ports"
)

type (
	// TxManager controls transaction boundaries for command handlers.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CustomerRepoFactory provides access to customer persistence operations.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to order persistence operations.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to courier persistence operations.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// BidRepoFactory provides access to bid persistence operations.
	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	// LedgerRepoFactory provides access to the append-only balance ledger.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// CustomerUoW is the unit of work for commands that touch only customers.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates customer units of work.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// CourierUoW is the unit of work for commands that touch only couriers.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates courier units of work.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderUoW is the unit of work for commands that touch only orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates order units of work.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AccountingUoW is the unit of work for balance operations. Every balance
	// change writes a matching ledger entry in the same transaction.
	AccountingUoW interface {
		TxManager
		CustomerRepoFactory
		LedgerRepoFactory
	}

	// AccountingUoWFactory creates accounting units of work.
	AccountingUoWFactory interface {
		Create() AccountingUoW
	}

	// CheckoutUoW is the unit of work for order placement. Placing an order
	// updates the customer account, persists the order, and records the
	// charge atomically.
	CheckoutUoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
		LedgerRepoFactory
	}

	// CheckoutUoWFactory creates checkout units of work.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// BiddingUoW is the unit of work for bid submission. Submitting a bid
	// needs the order for status checks, the courier for activity checks,
	// and the bid repository for the write.
	BiddingUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		BidRepoFactory
	}

	// BiddingUoWFactory creates bidding units of work.
	BiddingUoWFactory interface {
		Create() BiddingUoW
	}

	// AssignmentUoW is the unit of work for bidding resolution. Resolution
	// updates the order and the winning bid in the same transaction.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		BidRepoFactory
	}

	// AssignmentUoWFactory creates assignment units of work.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)
