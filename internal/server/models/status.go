package models

// Status is the lifecycle stage of a project. The three known values are
// the strings the mobile client has always sent; anything else is stored
// as-is and presented with the default category.
type Status string

const (
	StatusStart      Status = "Começar"
	StatusInProgress Status = "Em andamento"
	StatusFinished   Status = "Finalizado"
)

// KnownStatuses lists the statuses offered to users, in lifecycle order.
var KnownStatuses = []Status{StatusStart, StatusInProgress, StatusFinished}

// Category groups statuses for presentation.
type Category int

const (
	CategoryDefault Category = iota
	CategoryGreen
	CategoryYellow
	CategoryRed
)

// CategoryOf never fails: unrecognized statuses map to CategoryDefault.
func CategoryOf(s Status) Category {
	switch s {
	case StatusStart:
		return CategoryGreen
	case StatusInProgress:
		return CategoryYellow
	case StatusFinished:
		return CategoryRed
	default:
		return CategoryDefault
	}
}

// Color is the hex color cards of this category are painted with.
func (c Category) Color() string {
	switch c {
	case CategoryGreen:
		return "#4CAF50"
	case CategoryYellow:
		return "#FFC107"
	case CategoryRed:
		return "#F44336"
	default:
		return "#DDDDDD"
	}
}

func (c Category) String() string {
	switch c {
	case CategoryGreen:
		return "green"
	case CategoryYellow:
		return "yellow"
	case CategoryRed:
		return "red"
	default:
		return "gray"
	}
}

func (s Status) Known() bool {
	return CategoryOf(s) != CategoryDefault
}
