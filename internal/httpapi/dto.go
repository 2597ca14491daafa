package httpapi

import (
    "github.com/tinoosan/pantry/internal/meta"
    "github.com/tinoosan/pantry/internal/pantry"
)

// Response keys. Clients depend on these exact spellings.
const (
    keyGroceryTypesList = "groc_types_list"
    keyGroceryList      = "groc_list"
    keyGroceryTypes     = "groc_types"
    keyUsersList        = "users_list"
    keyListOwners       = "groc_list_owners"
    keyEndpoints        = "Available endpoints"
)

// itemNameField carries the item name inside POST /groc/add bodies.
const itemNameField = "name"

// addItemInput holds a decoded POST /groc/add body.
type addItemInput struct {
    Name   string
    Fields pantry.Fields
}

// addListInput holds a decoded POST /groc_list/groc_list/add body.
type addListInput struct {
    Owner string
    List  pantry.GroceryList
}

type listResponse struct {
    Owner string `json:"user_name"`
    pantry.GroceryList
}

// addUserInput holds a decoded POST /users/add body.
type addUserInput struct {
    Username string
    Attrs    meta.Attributes
}

type itemResponse struct {
    Name string `json:"name"`
    pantry.Record
}

type typeDetailsResponse struct {
    Type  pantry.GroceryType `json:"type"`
    Label string             `json:"label"`
    Items []string           `json:"items"`
}

type usersDictResponse struct {
    Data  map[string]meta.Attributes `json:"Data"`
    Type  string                     `json:"Type"`
    Title string                     `json:"Title"`
}

type menuChoice struct {
    Text string `json:"text"`
    URL  string `json:"url"`
}

type mainPageResponse struct {
    Title   string                `json:"Title"`
    Default int                   `json:"Default"`
    Choices map[string]menuChoice `json:"Choices"`
}
