//go:build !mobile

// stub.go - 桌面端构建时的占位文件
//
// 真正的 ebitenmobile 入口在 mobile.go，只在 -tags mobile 时编译；
// 这里保证 ./... 在桌面端也能编译通过。
package mobile

// Dummy 与移动端导出相同的符号
func Dummy() {}
