package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribe_Self(t *testing.T) {
	// 自订阅在任何存储访问之前即被拒绝，因此无需真实依赖
	s := NewSubscriptionService(nil, nil)

	_, err := s.Subscribe(7, 7)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}

func TestUnsubscribe_Self(t *testing.T) {
	s := NewSubscriptionService(nil, nil)

	err := s.Unsubscribe(7, 7)
	assert.ErrorIs(t, err, ErrSelfSubscription)
}
