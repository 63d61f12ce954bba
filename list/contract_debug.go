//go:build listdebug

package list

const debugAssertions = true
