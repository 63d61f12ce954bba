//go:build !listdebug

package list

const debugAssertions = false
