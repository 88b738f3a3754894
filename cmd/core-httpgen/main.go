package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/gen"
	"github.com/griffnb/core-httpgen/internal/orchestrator"
	"github.com/griffnb/core-httpgen/internal/parser/route"
	"github.com/griffnb/core-httpgen/internal/render"
)

const (
	inputFlag             = "input"
	outputFlag            = "output"
	outputTypesFlag       = "outputTypes"
	clientNameFlag        = "clientName"
	configKeyFlag         = "configKey"
	authenticationFlag    = "authentication"
	namespaceFlag         = "namespace"
	instanceNameFlag      = "instanceName"
	includeDeprecatedFlag = "includeDeprecated"
	maxShapeDepthFlag     = "maxShapeDepth"
	concurrencyFlag       = "concurrency"
	quietFlag             = "quiet"
	debugFlag             = "debug"
)

var inputFlagDef = &cli.StringFlag{
	Name:     inputFlag,
	Aliases:  []string{"i"},
	Required: true,
	Usage:    "Swagger 2 document to generate from, JSON or YAML",
}

var identityFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    clientNameFlag,
		Aliases: []string{"n"},
		Usage:   "Client name, defaults to the document title",
	},
	&cli.StringFlag{
		Name:    configKeyFlag,
		Aliases: []string{"k"},
		Usage:   "Configuration key, defaults to the first word of the client name",
	},
	&cli.StringFlag{
		Name:    authenticationFlag,
		Aliases: []string{"a"},
		Usage:   "Authentication of the generated client: none, bearer, basic, digest. Defaults to the document's security definitions",
	},
	&cli.BoolFlag{
		Name:  includeDeprecatedFlag,
		Usage: "Generate deprecated operations, disabled by default",
	},
	&cli.IntFlag{
		Name:  maxShapeDepthFlag,
		Value: route.MaxShapeDepth,
		Usage: "Maximum number of nested definitions expanded in a response shape",
	},
	&cli.IntFlag{
		Name:  concurrencyFlag,
		Usage: "Parallel resolution workers, 0 means one per CPU",
	},
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

var generateFlags = append([]cli.Flag{
	inputFlagDef,
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./client",
		Usage:   "Output directory for all the generated files",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "php",
		Usage:   "Output types of generated files like php,json,yaml",
	},
	&cli.StringFlag{
		Name:  namespaceFlag,
		Value: render.DefaultNamespaceRoot,
		Usage: "Namespace root of the generated classes",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "",
		Usage: "This parameter can be used to name different resource graph dumps. It is optional.",
	},
}, identityFlags...)

var listFlags = append([]cli.Flag{inputFlagDef}, identityFlags...)

func configureConsole(ctx *cli.Context) {
	if ctx.App.ErrWriter != nil {
		console.Logger.SetOutput(ctx.App.ErrWriter)
	}
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}
	console.Logger.SetQuiet(ctx.Bool(quietFlag))
}

func generateAction(ctx *cli.Context) error {
	configureConsole(ctx)

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	return gen.New().Build(&gen.Config{
		InputFile:         ctx.String(inputFlag),
		OutputDir:         ctx.String(outputFlag),
		OutputTypes:       outputTypes,
		ClientName:        ctx.String(clientNameFlag),
		ConfigKey:         ctx.String(configKeyFlag),
		Authentication:    ctx.String(authenticationFlag),
		NamespaceRoot:     ctx.String(namespaceFlag),
		InstanceName:      ctx.String(instanceNameFlag),
		IncludeDeprecated: ctx.Bool(includeDeprecatedFlag),
		MaxShapeDepth:     ctx.Int(maxShapeDepthFlag),
		Concurrency:       ctx.Int(concurrencyFlag),
		Debugger:          console.Logger,
	})
}

func listAction(ctx *cli.Context) error {
	configureConsole(ctx)

	graph, err := orchestrator.New(&orchestrator.Config{
		ClientName:        ctx.String(clientNameFlag),
		ConfigKey:         ctx.String(configKeyFlag),
		Authentication:    ctx.String(authenticationFlag),
		IncludeDeprecated: ctx.Bool(includeDeprecatedFlag),
		MaxShapeDepth:     ctx.Int(maxShapeDepthFlag),
		Concurrency:       ctx.Int(concurrencyFlag),
		Debug:             console.Logger,
	}).Parse(ctx.String(inputFlag))
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	fmt.Fprintf(out, "%s (%s, %s)\n", graph.ClientName(), graph.ConfigKey(), graph.Authentication())
	for _, method := range graph.Methods() {
		fmt.Fprintf(out, "  %-7s /%s -> %s\n", strings.ToUpper(method.Verb), method.Path, method.Name)
	}
	for _, model := range graph.Models() {
		fmt.Fprintf(out, "  model %s (%d accessors)\n", model.Name, len(model.Methods))
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Version = gen.Version
	app.Usage = "Generate an HTTP client from a Swagger 2.0 document."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate the client",
			Action:  generateAction,
			Flags:   generateFlags,
		},
		{
			Name:    "list",
			Aliases: []string{"l"},
			Usage:   "List the methods and models the client would contain",
			Action:  listAction,
			Flags:   listFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
