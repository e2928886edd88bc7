package gormgw

import "time"

// Table schemas of the hosted database. Rows are read and written as
// gateway.Row maps; these structs only drive migrations.

type RowBase struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type CenterRow struct {
	RowBase
	Name            string `gorm:"size:255;not null"`
	Address         string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text"`
	TotalLocals     int    `gorm:"not null;default:0"`
	AvailableLocals int    `gorm:"not null;default:0"`
}

func (CenterRow) TableName() string { return "centers" }

type LocalRow struct {
	RowBase
	Number      string  `gorm:"size:50;not null"`
	Size        float64 `gorm:"not null;default:0"`
	Status      string  `gorm:"size:20;not null;default:available"`
	MonthlyRent float64 `gorm:"not null;default:0"`
	CenterID    string  `gorm:"size:36;not null;index"`
	OwnerID     *string `gorm:"size:36;index"`
	ActivityID  *string `gorm:"size:36;index"`
}

func (LocalRow) TableName() string { return "locals" }

type OwnerRow struct {
	RowBase
	FirstName   string `gorm:"size:100;not null"`
	LastName    string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255"`
	Phone       string `gorm:"size:50"`
	Address     string `gorm:"size:255"`
	LocalsCount int    `gorm:"not null;default:0"`
}

func (OwnerRow) TableName() string { return "owners" }

type ActivityRow struct {
	RowBase
	Name        string  `gorm:"size:255;not null"`
	Type        string  `gorm:"size:20;not null"`
	Description string  `gorm:"type:text"`
	LocalID     *string `gorm:"size:36;index"`
}

func (ActivityRow) TableName() string { return "activities" }

type UserRow struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	DisplayName  string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (UserRow) TableName() string { return "users" }

// Models returns every schema struct in migration order.
func Models() []any {
	return []any{&UserRow{}, &CenterRow{}, &OwnerRow{}, &ActivityRow{}, &LocalRow{}}
}

// EntityTables lists the user-owned tables reachable through Client.From.
var EntityTables = []string{"centers", "locals", "owners", "activities"}
