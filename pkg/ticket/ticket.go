// Package ticket implements the booking office: passengers join one of
// three priority buckets (senior, ladies, general) and are issued
// tickets in strict bucket order, senior first.
//
// Each bucket is a plain FIFO; the priority lives entirely in the drain
// order, so there is no scheduling algorithm to speak of. Fares are
// priced from the actual routed distance between the passenger's
// stations, through the network's fare policy.
package ticket

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/railnav/railnav/pkg/container"
	"github.com/railnav/railnav/pkg/railnet"
)

var (
	// ErrUnreachable is returned by [Office.Book] when no unblocked path
	// connects the passenger's stations, so no fare can be priced.
	ErrUnreachable = errors.New("no route between stations")

	// ErrNoPassengers is returned by [Office.ProcessNext] when every
	// bucket is empty.
	ErrNoPassengers = errors.New("no passengers waiting")
)

// PassengerType selects the queue bucket and any fare concession.
type PassengerType string

const (
	TypeGeneral PassengerType = "general"
	TypeLadies  PassengerType = "ladies"
	TypeSenior  PassengerType = "senior"
)

// seniorAge is the age above which passengers are upgraded to the
// senior bucket regardless of the declared type.
const seniorAge = 60

// Ticket is an issued or pending fare.
type Ticket struct {
	ID        uuid.UUID
	Passenger string
	Age       int
	Type      PassengerType
	From      int
	To        int
	Fare      int
	DistKm    int
}

// Stats summarizes the office's takings.
type Stats struct {
	Issued  int
	Revenue int
}

// Office books passengers against a rail network and drains them in
// priority order. Not safe for concurrent use.
type Office struct {
	net    *railnet.Network
	policy railnet.FarePolicy

	senior  container.Queue[Ticket]
	ladies  container.Queue[Ticket]
	general container.Queue[Ticket]

	stats Stats
}

// NewOffice creates a booking office over net with the given tariff.
func NewOffice(net *railnet.Network, policy railnet.FarePolicy) *Office {
	return &Office{net: net, policy: policy}
}

// Book prices a journey and places the passenger in the matching bucket.
// Passengers older than 60 are upgraded to the senior bucket and receive
// the senior concession. Returns ErrUnreachable when the stations are
// not connected, or railnet.ErrInvalidStation for a bad id.
func (o *Office) Book(passenger string, age int, typ PassengerType, from, to int) (Ticket, error) {
	route, ok, err := o.net.ShortestRoute(from, to)
	if err != nil {
		return Ticket{}, fmt.Errorf("price journey: %w", err)
	}
	if !ok {
		return Ticket{}, ErrUnreachable
	}

	if age > seniorAge {
		typ = TypeSenior
	}

	fare := o.policy.Fare(route.Dist)
	if typ == TypeSenior {
		fare = o.policy.SeniorFare(route.Dist)
	}

	t := Ticket{
		ID:        uuid.New(),
		Passenger: passenger,
		Age:       age,
		Type:      typ,
		From:      from,
		To:        to,
		Fare:      fare,
		DistKm:    route.Dist,
	}

	switch typ {
	case TypeSenior:
		o.senior.Push(t)
	case TypeLadies:
		o.ladies.Push(t)
	default:
		o.general.Push(t)
	}
	return t, nil
}

// ProcessNext issues the highest-priority pending ticket: seniors before
// ladies before general, FIFO within a bucket.
// Returns ErrNoPassengers when every bucket is empty.
func (o *Office) ProcessNext() (Ticket, error) {
	for _, q := range []*container.Queue[Ticket]{&o.senior, &o.ladies, &o.general} {
		t, err := q.Pop()
		if err != nil {
			continue
		}
		o.stats.Issued++
		o.stats.Revenue += t.Fare
		return t, nil
	}
	return Ticket{}, ErrNoPassengers
}

// ProcessAll issues every pending ticket in priority order and returns
// them in issue order.
func (o *Office) ProcessAll() []Ticket {
	var issued []Ticket
	for {
		t, err := o.ProcessNext()
		if err != nil {
			return issued
		}
		issued = append(issued, t)
	}
}

// Pending returns the number of passengers waiting across all buckets.
func (o *Office) Pending() int {
	return o.senior.Len() + o.ladies.Len() + o.general.Len()
}

// Stats returns cumulative issue counts and revenue.
func (o *Office) Stats() Stats { return o.stats }
