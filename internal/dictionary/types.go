package dictionary

import (
    "sort"

    "github.com/tinoosan/pantry/internal/pantry"
)

type TypeDef struct {
    Code  pantry.GroceryType `json:"code"`
    Label string             `json:"label"`
}

// curated is the closed set of grocery types. It is never mutated after init.
var curated = []TypeDef{
    {Code: pantry.TypeBakedGoods, Label: "Baked Goods"},
    {Code: pantry.TypeProduce, Label: "Produce"},
    {Code: pantry.TypeDairy, Label: "Dairy"},
    {Code: pantry.TypeMeat, Label: "Meat"},
    {Code: pantry.TypeSeafood, Label: "Seafood"},
    {Code: pantry.TypeFrozen, Label: "Frozen"},
    {Code: pantry.TypePantry, Label: "Pantry Staples"},
    {Code: pantry.TypeBeverages, Label: "Beverages"},
    {Code: pantry.TypeSnacks, Label: "Snacks"},
    {Code: pantry.TypeCondiments, Label: "Condiments"},
    {Code: pantry.TypeHousehold, Label: "Household"},
}

var known = func() map[pantry.GroceryType]struct{} {
    m := make(map[pantry.GroceryType]struct{}, len(curated))
    for _, d := range curated {
        m[d.Code] = struct{}{}
    }
    return m
}()

// ItemSource exposes the type of every stored item by name.
type ItemSource interface {
    ItemTypes() map[string]pantry.GroceryType
}

// Definitions returns the curated type definitions in registration order.
func Definitions() []TypeDef {
    out := make([]TypeDef, len(curated))
    copy(out, curated)
    return out
}

// Types returns every registered tag, sorted.
func Types() []pantry.GroceryType {
    out := make([]pantry.GroceryType, 0, len(known))
    for t := range known {
        out = append(out, t)
    }
    sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
    return out
}

// TypeSet returns the registered tags as a set. The caller owns the map.
func TypeSet() map[pantry.GroceryType]struct{} {
    out := make(map[pantry.GroceryType]struct{}, len(known))
    for t := range known {
        out[t] = struct{}{}
    }
    return out
}

func IsKnown(t pantry.GroceryType) bool {
    _, ok := known[t]
    return ok
}

// ItemsOfType lists the names of items in src whose type is t, sorted.
// ok is false only when t is not a registered tag; a known tag with no items
// yields an empty, non-nil slice.
func ItemsOfType(t pantry.GroceryType, src ItemSource) (names []string, ok bool) {
    if !IsKnown(t) {
        return nil, false
    }
    names = []string{}
    for name, typ := range src.ItemTypes() {
        if typ == t {
            names = append(names, name)
        }
    }
    sort.Strings(names)
    return names, true
}
