package pantry

import (
    "encoding/json"
    "math"
    "strconv"
)

// GroceryType tags the kind of a grocery item. Valid tags live in the dictionary package.
type GroceryType string

const (
    TypeBakedGoods GroceryType = "baked_goods"
    TypeProduce    GroceryType = "produce"
    TypeDairy      GroceryType = "dairy"
    TypeMeat       GroceryType = "meat"
    TypeSeafood    GroceryType = "seafood"
    TypeFrozen     GroceryType = "frozen"
    TypePantry     GroceryType = "pantry"
    TypeBeverages  GroceryType = "beverages"
    TypeSnacks     GroceryType = "snacks"
    TypeCondiments GroceryType = "condiments"
    TypeHousehold  GroceryType = "household"
)

// Field names of a grocery record as they appear on the wire.
const (
    FieldGroceryType    = "grocery_type"
    FieldQuantity       = "quantity"
    FieldExpirationDate = "expiration_date"
)

// RequiredFields lists every field a grocery record must carry, in check order.
var RequiredFields = []string{FieldGroceryType, FieldQuantity, FieldExpirationDate}

// Record is a single grocery item stored under its name.
type Record struct {
    GroceryType    GroceryType `json:"grocery_type"`
    Quantity       int         `json:"quantity"`
    // ExpirationDate is kept verbatim; no date format is enforced.
    ExpirationDate string      `json:"expiration_date"`
}

// Fields is untyped record input as decoded from a request body.
type Fields map[string]any

// Fields renders r as untyped input, mainly for callers that hold a typed record.
func (r Record) Fields() Fields {
    return Fields{
        FieldGroceryType:    string(r.GroceryType),
        FieldQuantity:       r.Quantity,
        FieldExpirationDate: r.ExpirationDate,
    }
}

// AsInt reports whether v holds an integral number and returns it.
// JSON numbers decode to float64 or json.Number; both are accepted when integral
// and within the range of int. Booleans and strings are never integers.
func AsInt(v any) (int, bool) {
    switch n := v.(type) {
    case int:
        return n, true
    case int8:
        return int(n), true
    case int16:
        return int(n), true
    case int32:
        return int(n), true
    case int64:
        return int(n), true
    case uint8:
        return int(n), true
    case uint16:
        return int(n), true
    case uint32:
        return int(n), true
    case uint:
        if uint64(n) > math.MaxInt { return 0, false }
        return int(n), true
    case uint64:
        if n > math.MaxInt { return 0, false }
        return int(n), true
    case float64:
        if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) { return 0, false }
        // float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
        if n >= float64(math.MaxInt) || n < float64(math.MinInt) { return 0, false }
        return int(n), true
    case json.Number:
        i, err := strconv.ParseInt(string(n), 10, 0)
        if err != nil { return 0, false }
        return int(i), true
    default:
        return 0, false
    }
}
