package main

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/receivers/internal/ast"
	"github.com/funvibe/receivers/internal/calls"
)

var qualifierCmd = &cobra.Command{
	Use:   "qualifier <class>",
	Short: "Members visible through a bare class reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.finish()
		class, err := e.class(args[0])
		if err != nil {
			return err
		}
		session := e.module.Session
		receiver := calls.NewExpressionReceiverValue(ast.NewClassQualifier(class, session))
		e.out.header("qualifier " + class.Name)
		scope, ok := receiver.Scope(session, e.scopeSession)
		if !ok {
			e.out.absent()
			return nil
		}
		e.out.scope(scope, session)
		return nil
	},
}

var companionsCmd = &cobra.Command{
	Use:   "companions <class>",
	Short: "Companion scopes reachable from inside a class body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.finish()
		class, err := e.class(args[0])
		if err != nil {
			return err
		}
		session := e.module.Session
		receiver := calls.NewImplicitDispatchReceiverValue(class, class.DefaultType(), session, e.scopeSession)
		companions := receiver.ImplicitCompanionScopes()
		e.out.header("companions of " + class.Name)
		if len(companions) == 0 {
			e.out.absent()
		}
		for i, scope := range companions {
			e.out.subheader(i)
			e.out.scope(scope, session)
		}
		return nil
	},
}

var membersCmd = &cobra.Command{
	Use:   "members <class>",
	Short: "Instance member scope of a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.finish()
		class, err := e.class(args[0])
		if err != nil {
			return err
		}
		session := e.module.Session
		receiver := calls.NewClassDispatchReceiverValue(class)
		e.out.header("members of " + receiver.Type().String())
		scope, ok := receiver.Scope(session, e.scopeSession)
		if !ok {
			e.out.absent()
			return nil
		}
		e.out.scope(scope, session)
		return nil
	},
}

var flagWorkers int

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Qualifier view of every class, resolved concurrently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.finish()
		session := e.module.Session
		classes := session.Classes()
		sections := make([]string, len(classes))

		g, ctx := errgroup.WithContext(cmd.Context())
		if flagWorkers > 0 {
			g.SetLimit(flagWorkers)
		}
		for i, class := range classes {
			i, class := i, class
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				var sb strings.Builder
				p := newPrinter(&sb, e.out.color)
				p.header("qualifier " + class.Name)
				receiver := calls.NewExpressionReceiverValue(ast.NewClassQualifier(class, session))
				if scope, ok := receiver.Scope(session, e.scopeSession); ok {
					p.scope(scope, session)
				} else {
					p.absent()
				}
				sections[i] = sb.String()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, s := range sections {
			e.out.raw(s)
		}
		e.logger.Debug("dumped classes", "count", len(classes))
		return nil
	},
}

func init() {
	allCmd.Flags().IntVar(&flagWorkers, "workers", 4, "number of concurrent resolvers")
}
