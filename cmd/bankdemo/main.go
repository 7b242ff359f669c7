// cmd/bankdemo/main.go

// bankdemo 以命令列示範帳戶模型：內建範例（demo）或讀取情境檔（run）。
// 設定與記錄器的初始化都在 internal/cli 內完成。

package main

import "bankaccounts/internal/cli"

func main() {
	cli.Execute()
}
