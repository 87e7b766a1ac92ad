package utils

import "regexp"

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail 纯函数：local@domain.tld，顶级域至少 2 个字母
func ValidateEmail(s string) bool { return emailRE.MatchString(s) }

// Required 必填字段及其是否出现
type Required struct {
	Name string
	Set  bool
}

// FirstMissing 返回第一个缺失字段名（按调用方给出的顺序），都在则返回 ""
func FirstMissing(fields ...Required) string {
	for _, f := range fields {
		if !f.Set {
			return f.Name
		}
	}
	return ""
}
