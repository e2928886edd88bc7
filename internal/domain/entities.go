// Package domain holds the market entities (centers, locals, owners,
// activities) in their camelCase presentation shape.
package domain

import (
	"strings"
	"time"

	"github.com/diewo77/indh-market/validation"
)

// Entity is implemented by every record kept in an entity store.
type Entity interface {
	EntityID() string
}

type LocalStatus string

const (
	LocalAvailable LocalStatus = "available"
	LocalRented    LocalStatus = "rented"
)

var LocalStatuses = []string{string(LocalAvailable), string(LocalRented)}

type ActivityType string

const (
	ActivityBoutique   ActivityType = "boutique"
	ActivityRestaurant ActivityType = "restaurant"
	ActivityService    ActivityType = "service"
	ActivityArtisanat  ActivityType = "artisanat"
	ActivityAutre      ActivityType = "autre"
)

var ActivityTypes = []string{
	string(ActivityBoutique), string(ActivityRestaurant), string(ActivityService),
	string(ActivityArtisanat), string(ActivityAutre),
}

// Center is a commercial complex. AvailableLocals may exceed TotalLocals:
// both are entered by hand and never recomputed from Local rows.
type Center struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	Description     string    `json:"description"`
	TotalLocals     int       `json:"totalLocals"`
	AvailableLocals int       `json:"availableLocals"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (c Center) EntityID() string { return c.ID }

func (c Center) Validate() error {
	v := validation.Violations{}
	validation.Required("name", c.Name, v)
	validation.Required("address", c.Address, v)
	validation.NonNegativeInt("totalLocals", c.TotalLocals, v)
	validation.NonNegativeInt("availableLocals", c.AvailableLocals, v)
	return NewValidationError(v)
}

// Local is a rentable unit. CenterName, OwnerName and ActivityName are
// display copies taken when the row was last read or written.
type Local struct {
	ID           string      `json:"id"`
	Number       string      `json:"number"`
	Size         float64     `json:"size"`
	Status       LocalStatus `json:"status"`
	MonthlyRent  float64     `json:"monthlyRent"`
	CenterID     string      `json:"centerId"`
	CenterName   string      `json:"centerName,omitempty"`
	OwnerID      string      `json:"ownerId,omitempty"`
	OwnerName    string      `json:"ownerName,omitempty"`
	ActivityID   string      `json:"activityId,omitempty"`
	ActivityName string      `json:"activityName,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func (l Local) EntityID() string { return l.ID }

func (l Local) Validate() error {
	v := validation.Violations{}
	validation.Required("number", l.Number, v)
	validation.Required("centerId", l.CenterID, v)
	validation.OneOf("status", string(l.Status), LocalStatuses, v)
	validation.NonNegativeFloat("size", l.Size, v)
	validation.NonNegativeFloat("monthlyRent", l.MonthlyRent, v)
	return NewValidationError(v)
}

type Owner struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	LocalsCount int       `json:"localsCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (o Owner) EntityID() string { return o.ID }

// FullName is the display form used wherever an owner is referenced.
func (o Owner) FullName() string { return JoinName(o.FirstName, o.LastName) }

func (o Owner) Validate() error {
	v := validation.Violations{}
	validation.Required("firstName", o.FirstName, v)
	validation.Required("lastName", o.LastName, v)
	validation.Email("email", o.Email, v)
	return NewValidationError(v)
}

type Activity struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	LocalID     string       `json:"localId,omitempty"`
	LocalNumber string       `json:"localNumber,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (a Activity) EntityID() string { return a.ID }

func (a Activity) Validate() error {
	v := validation.Violations{}
	validation.Required("name", a.Name, v)
	validation.OneOf("type", string(a.Type), ActivityTypes, v)
	return NewValidationError(v)
}

// JoinName renders "first last", dropping the separator when one half is blank.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
