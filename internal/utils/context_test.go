// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func TestSubjectCtxKey(t *testing.T) {
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext_Success(t *testing.T) {
	ctx := WithSubject(context.Background(), "alice")

	subject, ok := GetSubjectFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subject != "alice" {
		t.Errorf("expected subject 'alice', got '%s'", subject)
	}
}

func TestGetSubjectFromContext_Missing(t *testing.T) {
	subject, ok := GetSubjectFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
	if subject != "" {
		t.Errorf("expected empty subject, got '%s'", subject)
	}
}

func TestGetSubjectFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, 42)

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	ctx := WithSubject(context.Background(), "")

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Error("expected ok=false for empty subject")
	}
}
