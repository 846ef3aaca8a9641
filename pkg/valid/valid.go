package valid

import (
	"time"

	"github.com/google/uuid"
)

func String(in *string) string {
	if in == nil {
		return ""
	}
	return *in
}

func StringPointer(in string) *string {
	return &in
}

func Float64(in *float64) float64 {
	if in == nil {
		return 0
	}
	return *in
}

func Float64Pointer(in float64) *float64 {
	return &in
}

func Int(in *int) int {
	if in == nil {
		return 0
	}
	return *in
}

func UUID(in *uuid.UUID) uuid.UUID {
	if in == nil {
		return uuid.Nil
	}
	return *in
}

func UUIDPointer(in uuid.UUID) *uuid.UUID {
	return &in
}

func StringToPointerUUID(in string) *uuid.UUID {
	id, err := uuid.Parse(in)
	if err != nil {
		return nil
	}
	return &id
}

func DayTime(in *time.Time) time.Time {
	if in == nil {
		return time.Time{}
	}
	return *in
}
