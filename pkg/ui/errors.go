package ui

import "errors"

var (
	// ErrUnknownScreenIdentity 注册表中没有该标识的模板
	ErrUnknownScreenIdentity = errors.New("unknown screen identity")

	// ErrEmptyStack 对空弹窗栈执行 Pop
	ErrEmptyStack = errors.New("popup stack is empty")
)
