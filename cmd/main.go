package main

import (
	"fmt"
	"os"

	"dispatch_admin/internal/cli"
)

// @title Dispatch Admin API
// @version 1.0
// @description 配送规则、运费矩阵及基础数据管理接口
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
