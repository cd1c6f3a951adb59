// Command flats-admin is a CLI for the flats back-office API: login, backup
// export/import, and media usage inspection.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "flats")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flats")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// ---- http client ----

type apiClient struct {
	base   string
	bearer string
	http   *http.Client
}

func (c *apiClient) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.base, "/")+path, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: HTTP %d", method, path, resp.StatusCode)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func fail(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func ok(format string, a ...any) {
	color.New(color.FgGreen).Printf(format+"\n", a...)
}

func usage() {
	fmt.Fprintf(os.Stderr, `flats-admin
Usage:
  flats-admin -addr URL <cmd> [args]

Commands:
  version
  login      -u <username> -p <password>       (saves token)
  export     [-o file]                         (writes backup JSON)
  import     -file <backup.json | ->
  usage                                        (media storage usage)
  rate                                         (current GBP->BRL via a week report)
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "server base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cli := &apiClient{base: *addr, http: &http.Client{Timeout: 60 * time.Second}}

	switch cmd {

	case "version":
		fmt.Printf("flats-admin %s (%s)\n", version, buildDate)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		_ = fs.Parse(flag.Args()[1:])
		if *u == "" || *p == "" {
			fmt.Fprintln(os.Stderr, "need -u and -p")
			os.Exit(1)
		}

		body, _ := json.Marshal(map[string]string{"username": *u, "password": *p})
		var resp struct {
			Token string `json:"token"`
			User  struct {
				Name string `json:"name"`
				Role string `json:"role"`
			} `json:"user"`
		}
		if err := cli.do(ctx, http.MethodPost, "/api/auth/login", bytes.NewReader(body), &resp); err != nil {
			fail(err)
		}
		// TTL is server-side; keep the local copy shorter than the default 12h.
		if err := saveToken(resp.Token, time.Now().Add(11*time.Hour)); err != nil {
			fail(err)
		}
		ok("logged in as %s (%s)", resp.User.Name, resp.User.Role)

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		out := fs.String("o", "", "output file (default stdout)")
		_ = fs.Parse(flag.Args()[1:])

		tok, err := loadToken()
		if err != nil {
			fail(err)
		}
		cli.bearer = tok

		var doc json.RawMessage
		if err := cli.do(ctx, http.MethodGet, "/api/backup/export", nil, &doc); err != nil {
			fail(err)
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, doc, "", "  "); err != nil {
			fail(err)
		}
		if *out == "" {
			fmt.Println(pretty.String())
			return
		}
		if err := os.WriteFile(*out, pretty.Bytes(), 0o600); err != nil {
			fail(err)
		}
		ok("backup written to %s (%d bytes)", *out, pretty.Len())

	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		file := fs.String("file", "", "backup JSON file, or - for stdin")
		_ = fs.Parse(flag.Args()[1:])
		if *file == "" {
			fmt.Fprintln(os.Stderr, "need -file")
			os.Exit(1)
		}

		tok, err := loadToken()
		if err != nil {
			fail(err)
		}
		cli.bearer = tok

		data, err := readAll(*file)
		if err != nil {
			fail(err)
		}
		if err := cli.do(ctx, http.MethodPost, "/api/backup/import", bytes.NewReader(data), nil); err != nil {
			fail(err)
		}
		ok("backup imported")

	case "usage":
		tok, err := loadToken()
		if err != nil {
			fail(err)
		}
		cli.bearer = tok

		var resp struct {
			TotalSize int64 `json:"totalSize"`
		}
		if err := cli.do(ctx, http.MethodGet, "/api/media-usage", nil, &resp); err != nil {
			fail(err)
		}
		fmt.Printf("media storage: %.2f MB (%d bytes)\n", float64(resp.TotalSize)/(1024*1024), resp.TotalSize)

	case "rate":
		tok, err := loadToken()
		if err != nil {
			fail(err)
		}
		cli.bearer = tok

		var resp struct {
			Rate     float64 `json:"taxaCambio"`
			Fallback bool    `json:"taxaAproximada"`
		}
		if err := cli.do(ctx, http.MethodGet, "/api/reports/commissions?period=week", nil, &resp); err != nil {
			fail(err)
		}
		suffix := ""
		if resp.Fallback {
			suffix = " (fallback)"
		}
		fmt.Printf("GBP->BRL: %.2f%s\n", resp.Rate, suffix)

	default:
		usage()
	}
}
