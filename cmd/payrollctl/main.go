// payrollctl herramienta de operación offline: importa exports de nómina (CSV/XLSX)
// y crea la cuenta de administrador inicial.
//
// Uso:
//
//	payrollctl import --file payroll.csv
//	payrollctl seed-admin --email admin@example.com --password secreto --name Admin
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
