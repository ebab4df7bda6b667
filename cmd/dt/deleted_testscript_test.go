package main

import (
	"testing"

	"github.com/amonks/daytask/internal/testsupport"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestDeletedScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/deleted",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"taskid": testsupport.CmdTaskID,
			"seed":   testsupport.CmdSeed,
			"clock":  testsupport.CmdClock,
		},
	})
}
