package pantry

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestGroceryListClone(t *testing.T) {
    l := GroceryList{ListName: "weekly", NumItems: 2, Items: map[string]int{"milk": 1, "eggs": 12}}
    c := l.Clone()
    c.Items["milk"] = 5
    assert.Equal(t, 1, l.Items["milk"])
    assert.Equal(t, "weekly", c.ListName)

    empty := GroceryList{ListName: "none"}.Clone()
    assert.NotNil(t, empty.Items)
    assert.Empty(t, empty.Items)
}
