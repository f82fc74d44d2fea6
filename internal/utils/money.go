package utils

import (
	"fmt"
	"strconv"
)

// FormatINR renders an integer rupee amount with Indian digit grouping,
// e.g. 123456 -> "₹1,23,456".
func FormatINR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s₹%s", sign, groupIndian(amount))
}

// RupeeLabel is FormatINR without the currency mark, for plain-text output.
func RupeeLabel(amount int64) string {
	return "Rs. " + groupIndian(amount)
}

// Indian grouping: last three digits, then pairs. 1234567 -> 12,34,567.
func groupIndian(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}
	head := str[:len(str)-3]
	tail := str[len(str)-3:]
	var out []byte
	for i := 0; i < len(head); i++ {
		if i != 0 && (len(head)-i)%2 == 0 {
			out = append(out, ',')
		}
		out = append(out, head[i])
	}
	return string(out) + "," + tail
}
