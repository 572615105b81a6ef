// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestDeviceIDCtxKey(t *testing.T) {
	if DeviceIDCtxKey.String() != "deviceID" {
		t.Errorf("expected 'deviceID', got '%s'", DeviceIDCtxKey.String())
	}
}

func TestGetDeviceIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, "warehouse-7")

	deviceID, ok := GetDeviceIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if deviceID != "warehouse-7" {
		t.Errorf("expected 'warehouse-7', got '%s'", deviceID)
	}
}

func TestGetDeviceIDFromContext_Missing(t *testing.T) {
	_, ok := GetDeviceIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetDeviceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DeviceIDCtxKey, int64(42))

	_, ok := GetDeviceIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}
