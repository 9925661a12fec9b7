package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scour/internal/prof"
)

func startProfiling(cmd *cobra.Command) (*prof.Session, error) {
	flags := cmd.Root().PersistentFlags()
	session := &prof.Session{}
	session.CPUPath, _ = flags.GetString("cpu-profile")
	session.MemPath, _ = flags.GetString("mem-profile")
	session.TracePath, _ = flags.GetString("runtime-trace")
	if err := session.Start(); err != nil {
		return nil, err
	}
	return session, nil
}

func stopProfiling(session *prof.Session) {
	if err := session.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
