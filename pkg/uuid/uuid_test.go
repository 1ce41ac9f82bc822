// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

func TestNew(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	assert.NotEqual(t, first, second)
	assert.True(t, uuid.Valid(first))
	assert.Less(t, first, second, "v7 keys sort by creation time")
}

func TestValid(t *testing.T) {
	assert.False(t, uuid.Valid(""))
	assert.False(t, uuid.Valid("not-a-key"))
	assert.True(t, uuid.Valid("018f3c7e-9c1a-7b3e-8f00-0123456789ab"))
}
