package pantry

// Wire names of a grocery list submission.
const (
    FieldListOwner = "user_name"
    FieldListName  = "list_name"
    FieldNumItems  = "num_items"
    FieldListItems = "groc_list"
)

// GroceryList is the shopping list a user keeps. Each user holds at most one.
// Items maps an item name to the amount wanted; names need not exist in the
// grocery store.
type GroceryList struct {
    ListName string         `json:"list_name"`
    NumItems int            `json:"num_items"`
    Items    map[string]int `json:"groc_list"`
}

// Clone returns a copy of l that shares no map with it. Items is never nil.
func (l GroceryList) Clone() GroceryList {
    out := l
    out.Items = make(map[string]int, len(l.Items))
    for k, v := range l.Items {
        out.Items[k] = v
    }
    return out
}
