package models

import "math"

// ActorType distinguishes the two kinds of counterparties.
type ActorType string

const (
	ActorTypeCustomer ActorType = "customer"
	ActorTypeSupplier ActorType = "supplier"
)

// ActorNewCustomer is the sentinel actor id a form submits to request that a
// new customer be created inline during save.
const ActorNewCustomer uint = math.MaxUint32

// Actor represents a counterparty: a customer or a supplier.
type Actor struct {
	Base
	Title string    `gorm:"not null" json:"title"`
	Type  ActorType `gorm:"not null" json:"type"`
}
