package waste

import "fmt"

// Label is a waste category produced by the classifier. The numeric value
// is the position in the model output vector.
type Label int

const (
	Battery Label = iota
	Biological
	BrownGlass
	Cardboard
	Clothes
	GreenGlass
	Metal
	Paper
	Plastic
	Shoes
	Residu
	WhiteGlass
)

// Labels lists every label in model output order.
var Labels = [...]Label{
	Battery,
	Biological,
	BrownGlass,
	Cardboard,
	Clothes,
	GreenGlass,
	Metal,
	Paper,
	Plastic,
	Shoes,
	Residu,
	WhiteGlass,
}

var names = [len(Labels)]string{
	Battery:    "battery",
	Biological: "biological",
	BrownGlass: "brown-glass",
	Cardboard:  "cardboard",
	Clothes:    "clothes",
	GreenGlass: "green-glass",
	Metal:      "metal",
	Paper:      "paper",
	Plastic:    "plastic",
	Shoes:      "shoes",
	Residu:     "residu",
	WhiteGlass: "white-glass",
}

// Count is the width the model output vector must have.
const Count = len(Labels)

func (l Label) Valid() bool {
	return l >= 0 && int(l) < Count
}

func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return names[l]
}

// FromIndex maps a model output position to its label.
func FromIndex(i int) (Label, error) {
	l := Label(i)
	if !l.Valid() {
		return 0, fmt.Errorf("label index %d out of range [0,%d)", i, Count)
	}
	return l, nil
}

// ParseLabel returns the label with the given name.
func ParseLabel(name string) (Label, error) {
	for i, n := range names {
		if n == name {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", name)
}

// Names returns the label names in model output order.
func Names() []string {
	out := make([]string, Count)
	copy(out, names[:])
	return out
}
