package service

import (
	"testing"

	"foodgram-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakePairStore 内存配对存储，与数据库实现一样以 gorm.ErrDuplicatedKey 报告重复
type fakePairStore[T any] struct {
	rows   map[[2]int64]*T
	newRow func(actorID, targetID int64) *T
}

func newFakePairStore[T any](newRow func(actorID, targetID int64) *T) *fakePairStore[T] {
	return &fakePairStore[T]{rows: map[[2]int64]*T{}, newRow: newRow}
}

func (f *fakePairStore[T]) Exists(actorID, targetID int64) (bool, error) {
	_, ok := f.rows[[2]int64{actorID, targetID}]
	return ok, nil
}

func (f *fakePairStore[T]) Create(actorID, targetID int64) (*T, error) {
	key := [2]int64{actorID, targetID}
	if _, ok := f.rows[key]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	row := f.newRow(actorID, targetID)
	f.rows[key] = row
	return row, nil
}

func (f *fakePairStore[T]) Delete(actorID, targetID int64) (bool, error) {
	key := [2]int64{actorID, targetID}
	if _, ok := f.rows[key]; !ok {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakePairStore[T]) ListTargetIDs(actorID int64, skip, limit int) ([]int64, error) {
	var ids []int64
	for key := range f.rows {
		if key[0] == actorID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

func (f *fakePairStore[T]) CountByActor(actorID int64) (int64, error) {
	var count int64
	for key := range f.rows {
		if key[0] == actorID {
			count++
		}
	}
	return count, nil
}

func (f *fakePairStore[T]) BatchCheck(actorID int64, targetIDs []int64) (map[int64]bool, error) {
	result := make(map[int64]bool, len(targetIDs))
	for _, id := range targetIDs {
		_, ok := f.rows[[2]int64{actorID, id}]
		result[id] = ok
	}
	return result, nil
}

type fakeRecipeChecker struct {
	ids map[int64]bool
}

func (f *fakeRecipeChecker) Exists(recipeID int64) (bool, error) {
	return f.ids[recipeID], nil
}

type fakeUserGetter struct {
	users map[int64]*model.User
}

func (f *fakeUserGetter) GetByID(id int64) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserGetter) GetByIDs(ids []int64) ([]model.User, error) {
	var users []model.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func newFakeFavoriteStore() *fakePairStore[model.Favorite] {
	return newFakePairStore(func(actorID, targetID int64) *model.Favorite {
		return &model.Favorite{UserID: actorID, RecipeID: targetID}
	})
}

func newFakeCartStore() *fakePairStore[model.CartItem] {
	return newFakePairStore(func(actorID, targetID int64) *model.CartItem {
		return &model.CartItem{UserID: actorID, RecipeID: targetID}
	})
}

func newFakeSubscriptionStore() *fakePairStore[model.Subscription] {
	return newFakePairStore(func(actorID, targetID int64) *model.Subscription {
		return &model.Subscription{FollowerID: actorID, FollowID: targetID}
	})
}

func TestFavoriteAdd_Duplicate(t *testing.T) {
	store := newFakeFavoriteStore()
	s := NewFavoriteService(store, &fakeRecipeChecker{ids: map[int64]bool{10: true}})

	_, err := s.Add(1, 10)
	require.NoError(t, err)

	_, err = s.Add(1, 10)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)
	assert.Len(t, store.rows, 1)
}

func TestFavoriteRemove_Missing(t *testing.T) {
	store := newFakeFavoriteStore()
	s := NewFavoriteService(store, &fakeRecipeChecker{ids: map[int64]bool{10: true}})

	err := s.Remove(1, 10)
	assert.ErrorIs(t, err, ErrNotFavorited)
	assert.Empty(t, store.rows)
}

func TestCartAdd_Duplicate(t *testing.T) {
	store := newFakeCartStore()
	s := NewCartService(store, &fakeRecipeChecker{ids: map[int64]bool{10: true}})

	_, err := s.Add(1, 10)
	require.NoError(t, err)

	_, err = s.Add(1, 10)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	assert.Len(t, store.rows, 1)
}

func TestCartRemove_Missing(t *testing.T) {
	store := newFakeCartStore()
	s := NewCartService(store, &fakeRecipeChecker{ids: map[int64]bool{10: true}})

	err := s.Remove(1, 10)
	assert.ErrorIs(t, err, ErrNotInCart)
	assert.Empty(t, store.rows)
}

func TestSubscribe_Duplicate(t *testing.T) {
	store := newFakeSubscriptionStore()
	users := &fakeUserGetter{users: map[int64]*model.User{
		2: {ID: 2, UserName: "chef_anna"},
	}}
	s := NewSubscriptionService(store, users)

	_, err := s.Subscribe(1, 2)
	require.NoError(t, err)

	_, err = s.Subscribe(1, 2)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
	assert.Len(t, store.rows, 1)
}

func TestUnsubscribe_Missing(t *testing.T) {
	store := newFakeSubscriptionStore()
	users := &fakeUserGetter{users: map[int64]*model.User{
		2: {ID: 2, UserName: "chef_anna"},
	}}
	s := NewSubscriptionService(store, users)

	err := s.Unsubscribe(1, 2)
	assert.ErrorIs(t, err, ErrNotSubscribed)
	assert.Empty(t, store.rows)
}

func TestFavoriteAdd_RecipeNotFound(t *testing.T) {
	s := NewFavoriteService(newFakeFavoriteStore(), &fakeRecipeChecker{ids: map[int64]bool{}})

	_, err := s.Add(1, 99)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}
