// Command constellationctl is a thin control-surface client: it loads
// projects and drives transport playback on a running displayd.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kitonae/constellation/internal/controlpb"
	"github.com/kitonae/constellation/internal/projectjson"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "constellationctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("constellationctl", flag.ContinueOnError)
	addr := fs.String("addr", "127.0.0.1:50051", "display server control address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New("usage: constellationctl [-addr host:port] <command> [args]")
	}

	cmd, cmdArgs := rest[0], rest[1:]

	conn, err := grpc.NewClient(*addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(controlpb.Codec())),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *addr, err)
	}
	defer conn.Close()
	client := controlpb.NewDisplayControlClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "load-project":
		return cmdLoadProject(ctx, client, cmdArgs)
	case "play":
		return cmdPlay(ctx, client, cmdArgs)
	case "pause":
		return printAck(client.Pause(ctx, &controlpb.PauseRequest{}))
	case "stop":
		return printAck(client.Stop(ctx, &controlpb.StopRequest{}))
	case "seek":
		return cmdSeek(ctx, client, cmdArgs)
	case "rate":
		return cmdRate(ctx, client, cmdArgs)
	case "subscribe":
		return cmdSubscribe(client, cmdArgs)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLoadProject(ctx context.Context, client controlpb.DisplayControlClient, args []string) error {
	fs := flag.NewFlagSet("load-project", flag.ContinueOnError)
	yamlFlag := fs.Bool("yaml", false, "parse the file as YAML instead of JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: constellationctl load-project [-yaml] <file>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("read project file: %w", err)
	}

	var project *controlpb.Project
	if *yamlFlag {
		project, err = projectjson.ParseYAML(data)
	} else {
		project, err = projectjson.ParseJSON(data)
	}
	if err != nil {
		return fmt.Errorf("parse project file: %w", err)
	}

	return printAck(client.LoadProject(ctx, &controlpb.LoadProjectRequest{Project: project}))
}

func cmdPlay(ctx context.Context, client controlpb.DisplayControlClient, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	at := fs.Float64("at", 0, "resume from this time in seconds (0 means resume from the current position)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return printAck(client.Play(ctx, &controlpb.PlayRequest{AtSeconds: *at}))
}

func cmdSeek(ctx context.Context, client controlpb.DisplayControlClient, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: constellationctl seek <seconds>")
	}
	to, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse seconds: %w", err)
	}
	return printAck(client.Seek(ctx, &controlpb.SeekRequest{ToSeconds: to}))
}

func cmdRate(ctx context.Context, client controlpb.DisplayControlClient, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: constellationctl rate <multiplier>")
	}
	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parse rate: %w", err)
	}
	return printAck(client.SetRate(ctx, &controlpb.SetRateRequest{Rate: rate}))
}

func cmdSubscribe(client controlpb.DisplayControlClient, args []string) error {
	fs := flag.NewFlagSet("subscribe", flag.ContinueOnError)
	includeMetrics := fs.Bool("metrics", true, "include frame metrics in each update")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stream, err := client.SubscribeState(context.Background(), &controlpb.SubscribeRequest{IncludeMetrics: *includeMetrics})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	for {
		update, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("stream closed: %w", err)
		}
		fmt.Printf("%+v\n", update)
	}
}

func printAck(ack *controlpb.Ack, err error) error {
	if err != nil {
		return err
	}
	fmt.Printf("ok=%v message=%q\n", ack.OK, ack.Message)
	if !ack.OK {
		os.Exit(1)
	}
	return nil
}
