package memory

import (
    "context"
    "sync"
    "testing"

    "github.com/stretchr/testify/suite"

    "github.com/tinoosan/pantry/internal/errs"
    "github.com/tinoosan/pantry/internal/meta"
    "github.com/tinoosan/pantry/internal/pantry"
)

type StoreSuite struct {
    suite.Suite
    ctx   context.Context
    store *Store
}

func TestStoreSuite(t *testing.T) {
    suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
    s.ctx = context.Background()
    s.store = New()
}

var bread = pantry.Record{GroceryType: pantry.TypeBakedGoods, Quantity: 2, ExpirationDate: "10-20-2022"}

func (s *StoreSuite) TestItemLifecycle() {
    _, err := s.store.CreateItem(s.ctx, "bread", bread)
    s.Require().NoError(err)

    _, err = s.store.CreateItem(s.ctx, "bread", bread)
    s.Require().ErrorIs(err, errs.ErrConflict)

    got, err := s.store.ItemByName(s.ctx, "bread")
    s.Require().NoError(err)
    s.Equal(bread, got)

    updated, err := s.store.SetItemQuantity(s.ctx, "bread", 7)
    s.Require().NoError(err)
    s.Equal(7, updated.Quantity)
    s.Equal(bread.ExpirationDate, updated.ExpirationDate)

    replacement := pantry.Record{GroceryType: pantry.TypeFrozen, Quantity: 1, ExpirationDate: "later"}
    _, err = s.store.UpdateItem(s.ctx, "bread", replacement)
    s.Require().NoError(err)
    got, _ = s.store.ItemByName(s.ctx, "bread")
    s.Equal(replacement, got)

    s.Require().NoError(s.store.DeleteItem(s.ctx, "bread"))
    ok, err := s.store.ItemExists(s.ctx, "bread")
    s.Require().NoError(err)
    s.False(ok)
}

func (s *StoreSuite) TestMissingItem() {
    _, err := s.store.ItemByName(s.ctx, "ghost")
    s.ErrorIs(err, errs.ErrNotFound)
    _, err = s.store.UpdateItem(s.ctx, "ghost", bread)
    s.ErrorIs(err, errs.ErrNotFound)
    _, err = s.store.SetItemQuantity(s.ctx, "ghost", 1)
    s.ErrorIs(err, errs.ErrNotFound)
    s.ErrorIs(s.store.DeleteItem(s.ctx, "ghost"), errs.ErrNotFound)
}

func (s *StoreSuite) TestReadsAreCopies() {
    s.store.SeedItem("bread", bread)
    s.store.SeedUser("alice", meta.Attributes{"email": "a@x.com"})

    items, err := s.store.Items(s.ctx)
    s.Require().NoError(err)
    delete(items, "bread")
    ok, _ := s.store.ItemExists(s.ctx, "bread")
    s.True(ok)

    users, err := s.store.Users(s.ctx)
    s.Require().NoError(err)
    users["alice"]["email"] = "mutated"
    users, _ = s.store.Users(s.ctx)
    s.Equal("a@x.com", users["alice"]["email"])
}

func (s *StoreSuite) TestListingsAreSorted() {
    s.store.SeedItem("b", bread)
    s.store.SeedItem("a", bread)
    s.store.SeedItem("c", bread)
    names, err := s.store.ListItems(s.ctx)
    s.Require().NoError(err)
    s.Equal([]string{"a", "b", "c"}, names)

    s.Require().NoError(s.store.PutUser(s.ctx, "zoe", nil))
    s.Require().NoError(s.store.PutUser(s.ctx, "amy", nil))
    users, err := s.store.ListUsernames(s.ctx)
    s.Require().NoError(err)
    s.Equal([]string{"amy", "zoe"}, users)

    types := s.store.ItemTypes()
    s.Len(types, 3)
    s.Equal(pantry.TypeBakedGoods, types["a"])
}

func (s *StoreSuite) TestOnChangeAndReset() {
    var items, users, lists int
    s.store.OnChange(func(i, u, l int) { items, users, lists = i, u, l })
    s.Equal(0, items)

    _, err := s.store.CreateItem(s.ctx, "bread", bread)
    s.Require().NoError(err)
    s.Require().NoError(s.store.PutUser(s.ctx, "alice", nil))
    s.Require().NoError(s.store.PutList(s.ctx, "alice", pantry.GroceryList{ListName: "weekly"}))
    s.Equal(1, items)
    s.Equal(1, users)
    s.Equal(1, lists)

    s.store.Reset()
    s.Equal(0, items)
    s.Equal(0, users)
    s.Equal(0, lists)
}

func (s *StoreSuite) TestGroceryLists() {
    _, err := s.store.ListByOwner(s.ctx, "alice")
    s.ErrorIs(err, errs.ErrNotFound)

    items := map[string]int{"milk": 1}
    s.Require().NoError(s.store.PutList(s.ctx, "zoe", pantry.GroceryList{ListName: "party", Items: items}))
    s.Require().NoError(s.store.PutList(s.ctx, "alice", pantry.GroceryList{ListName: "weekly"}))
    items["milk"] = 7

    got, err := s.store.ListByOwner(s.ctx, "zoe")
    s.Require().NoError(err)
    s.Equal(1, got.Items["milk"])
    got.Items["milk"] = 9
    again, _ := s.store.ListByOwner(s.ctx, "zoe")
    s.Equal(1, again.Items["milk"])

    owners, err := s.store.ListOwners(s.ctx)
    s.Require().NoError(err)
    s.Equal([]string{"alice", "zoe"}, owners)

    s.Require().NoError(s.store.PutList(s.ctx, "alice", pantry.GroceryList{ListName: "monthly"}))
    all, err := s.store.Lists(s.ctx)
    s.Require().NoError(err)
    s.Len(all, 2)
    s.Equal("monthly", all["alice"].ListName)
}

func (s *StoreSuite) TestConcurrentCreateHasSingleWinner() {
    const n = 32
    var wg sync.WaitGroup
    results := make(chan error, n)
    for i := 0; i < n; i++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            _, err := s.store.CreateItem(s.ctx, "bread", bread)
            results <- err
        }()
    }
    wg.Wait()
    close(results)
    wins := 0
    for err := range results {
        if err == nil {
            wins++
        } else {
            s.ErrorIs(err, errs.ErrConflict)
        }
    }
    s.Equal(1, wins)
}
