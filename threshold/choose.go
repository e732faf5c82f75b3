/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package threshold

// chooseKoutOfN invokes f on the k-sized subsets of the positions {1, ..., n}
// in lexicographic order, until f returns false.
func chooseKoutOfN(n, k int, f func([]int64) bool) {
	choose(n, k, 0, nil, f)
}

// choose reports whether the enumeration should go on.
func choose(n int, targetAmount int, i int, currentSubGroup []int64, f func([]int64) bool) bool {
	if len(currentSubGroup) == targetAmount {
		return f(currentSubGroup)
	}
	// Not enough positions left to complete the subset
	if targetAmount-len(currentSubGroup) > n-i {
		return true
	}
	if !choose(n, targetAmount, i+1, appendPosition(currentSubGroup, int64(i+1)), f) {
		return false
	}
	return choose(n, targetAmount, i+1, currentSubGroup, f)
}

func appendPosition(positions []int64, p int64) []int64 {
	res := make([]int64, 0, len(positions)+1)
	res = append(res, positions...)
	return append(res, p)
}
