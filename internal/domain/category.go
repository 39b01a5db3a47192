package domain

import "fmt"

// Category is the mastery level (Leitner box) of a card. The boxes form a
// totally ordered sequence; CategoryDone is a terminal box reachable only
// from CategorySeventh and has no outgoing transition.
type Category string

// The defined Leitner boxes, in promotion order.
const (
	CategoryFirst   Category = "FIRST"
	CategorySecond  Category = "SECOND"
	CategoryThird   Category = "THIRD"
	CategoryFourth  Category = "FOURTH"
	CategoryFifth   Category = "FIFTH"
	CategorySixth   Category = "SIXTH"
	CategorySeventh Category = "SEVENTH"
	CategoryDone    Category = "DONE"
)

// orderedCategories lists every box in promotion order. Next relies on this
// ordering to find the immediate successor of a box.
var orderedCategories = []Category{
	CategoryFirst,
	CategorySecond,
	CategoryThird,
	CategoryFourth,
	CategoryFifth,
	CategorySixth,
	CategorySeventh,
	CategoryDone,
}

// Categories returns the boxes in promotion order. The returned slice is a
// copy; callers may not mutate the ordering.
func Categories() []Category {
	out := make([]Category, len(orderedCategories))
	copy(out, orderedCategories)
	return out
}

// ParseCategory converts an external label into a Category.
// Returns ErrInvalidCategory for labels outside the closed enumeration.
func ParseCategory(label string) (Category, error) {
	for _, c := range orderedCategories {
		if string(c) == label {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, label)
}

// IsValid reports whether the category is one of the defined boxes.
func (c Category) IsValid() bool {
	for _, v := range orderedCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Next returns the category a card moves to after a review. The function is
// pure and total over the defined boxes:
//   - correct promotes to the immediate successor; promoting from
//     CategorySeventh yields CategoryDone.
//   - incorrect resets to CategoryFirst.
//   - CategoryDone absorbs both outcomes. Mastery is permanent: once a card
//     reaches DONE it never re-enters rotation, even on a failed review.
func (c Category) Next(correct bool) Category {
	if c == CategoryDone {
		return CategoryDone
	}

	if !correct {
		return CategoryFirst
	}

	for i, v := range orderedCategories {
		if c == v {
			return orderedCategories[i+1]
		}
	}

	// Unreachable for values produced by ParseCategory or the constants.
	return CategoryDone
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
