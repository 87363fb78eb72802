package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Run the project's stories with a JDWP debug agent attached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := runOptionsFromFlags(cmd)

			port, _ := cmd.Flags().GetInt("debug-port")
			suspend, _ := cmd.Flags().GetBool("suspend")
			opts.ExtraJVMArgs = append(opts.ExtraJVMArgs, jdwpAgent(port, suspend))

			return c.runStories(cmd, opts)
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Int("debug-port", 5005, "Port the JDWP agent listens on")
	cmd.Flags().Bool("suspend", true, "Suspend the JVM until a debugger attaches")
	return cmd
}

// jdwpAgent builds the debug agent argument. With suspend the JVM waits for
// a debugger before executing anything.
func jdwpAgent(port int, suspend bool) string {
	s := "n"
	if suspend {
		s = "y"
	}
	return fmt.Sprintf("-agentlib:jdwp=transport=dt_socket,server=y,suspend=%s,address=*:%d", s, port)
}
