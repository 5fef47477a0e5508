package util

import (
	"fmt"
	"strconv"
)

// ParseID 解析路径中的数字 ID，0 视为无效
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
