// Copyright (c) 2026, The aixfacts Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/aixops/aixfacts/pkg/defaults"
)

// SSHConfig holds the connection settings of an SSH executor.
type SSHConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	// KeyFile is the path of an unencrypted private key.
	KeyFile string
	// KnownHostsFile enables host key verification. When empty any host key
	// is accepted.
	KnownHostsFile string
	DialTimeout    time.Duration
}

// SSH runs commands on a remote AIX host over one SSH connection. Each
// command gets its own session.
type SSH struct {
	client *ssh.Client
	addr   string
}

// DialSSH connects to the host described by cfg.
func DialSSH(ctx context.Context, cfg SSHConfig) (*SSH, error) {
	clientConfig, err := cfg.clientConfig()
	if err != nil {
		return nil, err
	}

	port := cfg.Port
	if port == 0 {
		port = 22
	}
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: clientConfig.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to establish ssh connection to %s: %w", addr, err)
	}

	slog.Debug("ssh connection established", "addr", addr, "user", cfg.User)

	return &SSH{
		client: ssh.NewClient(sshConn, chans, reqs),
		addr:   addr,
	}, nil
}

func (cfg SSHConfig) clientConfig() (*ssh.ClientConfig, error) {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaults.SSHDialTimeout
	}

	var auth []ssh.AuthMethod
	if cfg.KeyFile != "" {
		key, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file %q: %w", cfg.KeyFile, err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to parse key file %q: %w", cfg.KeyFile, err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		password := cfg.Password
		auth = append(auth,
			ssh.Password(password),
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range questions {
					answers[i] = password
				}
				return answers, nil
			}),
		)
	}
	if len(auth) == 0 {
		return nil, errors.New("ssh requires a key file or a password")
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey() //nolint:gosec // opt-in verification via KnownHostsFile
	if cfg.KnownHostsFile != "" {
		cb, err := knownhosts.New(cfg.KnownHostsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load known hosts %q: %w", cfg.KnownHostsFile, err)
		}
		hostKeyCallback = cb
	} else {
		slog.Warn("ssh host key verification disabled, set target.known_hosts to enable it",
			"host", cfg.Host)
	}

	return &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}, nil
}

// Run executes argv on the remote host through a POSIX shell.
func (s *SSH) Run(ctx context.Context, argv ...string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	start := time.Now()
	stdout, stderr, code, err := s.exec(ctx, "LC_ALL=C "+QuoteCommand(argv))
	res := &Result{
		Command:  argv,
		ExitCode: code,
		Duration: time.Since(start),
		Stdout:   DecodeOutput(stdout),
		Stderr:   DecodeOutput(stderr),
	}
	observe(argv, res, err)
	if err != nil {
		return nil, fmt.Errorf("failed to run %q on %s: %w", QuoteCommand(argv), s.addr, err)
	}
	return res, nil
}

// ReadFile returns the content of the remote file at path.
func (s *SSH) ReadFile(ctx context.Context, path string) ([]byte, error) {
	argv := []string{"cat", "--", path}
	stdout, stderr, code, err := s.exec(ctx, QuoteCommand(argv))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q on %s: %w", path, s.addr, err)
	}
	if code != 0 {
		return nil, fmt.Errorf("failed to read file %q on %s: %w", path, s.addr, &CommandError{
			Command:  QuoteCommand(argv),
			ExitCode: code,
			Stderr:   DecodeOutput(stderr),
		})
	}
	return stdout, nil
}

// StatFS returns block statistics of the remote filesystem containing path
// from the POSIX output of df.
func (s *SSH) StatFS(ctx context.Context, path string) (*FSStats, error) {
	argv := []string{"df", "-P", "-k", path}
	stdout, stderr, code, err := s.exec(ctx, "LC_ALL=C "+QuoteCommand(argv))
	if err != nil {
		return nil, fmt.Errorf("failed to stat filesystem %q on %s: %w", path, s.addr, err)
	}
	if code != 0 {
		return nil, fmt.Errorf("failed to stat filesystem %q on %s: %w", path, s.addr, &CommandError{
			Command:  QuoteCommand(argv),
			ExitCode: code,
			Stderr:   DecodeOutput(stderr),
		})
	}

	st, err := ParseDF(DecodeOutput(stdout))
	if err != nil {
		return nil, fmt.Errorf("failed to stat filesystem %q on %s: %w", path, s.addr, err)
	}
	return st, nil
}

// Close closes the SSH connection.
func (s *SSH) Close() error {
	return s.client.Close()
}

// exec runs cmd in a new session. A non-zero exit status is returned as
// code with a nil error.
func (s *SSH) exec(ctx context.Context, cmd string) ([]byte, []byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, -1, err
	}

	session, err := s.client.NewSession()
	if err != nil {
		return nil, nil, -1, fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Start(cmd); err != nil {
		return nil, nil, -1, fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return nil, nil, -1, ctx.Err()
	case err := <-done:
		if err == nil {
			return stdout.Bytes(), stderr.Bytes(), 0, nil
		}
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitStatus(), nil
		}
		return stdout.Bytes(), stderr.Bytes(), -1, err
	}
}
