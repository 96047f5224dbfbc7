package domain

type Category string

const (
	CategoryIndoor    Category = "indoor"
	CategorySucculent Category = "succulent"
	CategoryFlowering Category = "flowering"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryIndoor, CategorySucculent, CategoryFlowering:
		return true
	}
	return false
}

// Money is an amount in minor units (cents).
type Money struct {
	Currency string
	Amount   int64
}

type Product struct {
	ID       int
	Name     string
	Price    Money
	Image    string
	Category Category
}
