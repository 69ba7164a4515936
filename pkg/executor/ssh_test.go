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
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

const (
	testUser     = "root"
	testPassword = "secret"
)

// startSSHServer runs a minimal SSH server that executes every exec request
// with the local shell.
func startSSHServer(t *testing.T) (host string, port int, hostKey ssh.PublicKey) {
	t.Helper()
	sh := requireShell(t)

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := ssh.NewSignerFromKey(priv)
	require.NoError(t, err)

	cfg := &ssh.ServerConfig{
		PasswordCallback: func(c ssh.ConnMetadata, pass []byte) (*ssh.Permissions, error) {
			if c.User() == testUser && string(pass) == testPassword {
				return nil, nil
			}
			return nil, errors.New("denied")
		},
	}
	cfg.AddHostKey(signer)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go serveSSHConn(conn, cfg, sh)
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port, signer.PublicKey()
}

func serveSSHConn(conn net.Conn, cfg *ssh.ServerConfig, sh string) {
	_, chans, reqs, err := ssh.NewServerConn(conn, cfg)
	if err != nil {
		return
	}
	go ssh.DiscardRequests(reqs)

	for nc := range chans {
		if nc.ChannelType() != "session" {
			_ = nc.Reject(ssh.UnknownChannelType, "unsupported")
			continue
		}
		ch, requests, err := nc.Accept()
		if err != nil {
			continue
		}
		go func() {
			defer ch.Close()
			for req := range requests {
				if req.Type != "exec" {
					_ = req.Reply(false, nil)
					continue
				}
				var payload struct{ Command string }
				if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
					_ = req.Reply(false, nil)
					return
				}
				_ = req.Reply(true, nil)

				var stderr bytes.Buffer
				cmd := exec.Command(sh, "-c", payload.Command)
				cmd.Stdout = ch
				cmd.Stderr = &stderr
				code := 0
				if err := cmd.Run(); err != nil {
					var exitErr *exec.ExitError
					if errors.As(err, &exitErr) {
						code = exitErr.ExitCode()
					} else {
						code = 255
					}
				}
				_, _ = ch.Stderr().Write(stderr.Bytes())
				status := struct{ Status uint32 }{uint32(code)}
				_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
				return
			}
		}()
	}
}

func TestSSH_Run(t *testing.T) {
	host, port, _ := startSSHServer(t)

	s, err := DialSSH(context.TODO(), SSHConfig{
		Host:     host,
		Port:     port,
		User:     testUser,
		Password: testPassword,
	})
	require.NoError(t, err)
	defer s.Close()

	res, err := s.Run(context.TODO(), "echo", "it's here")
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "it's here\n", res.Stdout)

	res, err = s.Run(context.TODO(), "sh", "-c", "echo bad >&2; exit 4")
	require.NoError(t, err)
	assert.Equal(t, 4, res.ExitCode)
	assert.Equal(t, "bad\n", res.Stderr)

	var ce *CommandError
	require.True(t, errors.As(res.Err(), &ce))
	assert.Equal(t, 4, ce.ExitCode)
}

func TestSSH_ReadFile(t *testing.T) {
	host, port, _ := startSSHServer(t)

	path := filepath.Join(t.TempDir(), "niminfo")
	require.NoError(t, os.WriteFile(path, []byte("export NIM_NAME=aix01\n"), 0o600))

	s, err := DialSSH(context.TODO(), SSHConfig{Host: host, Port: port, User: testUser, Password: testPassword})
	require.NoError(t, err)
	defer s.Close()

	b, err := s.ReadFile(context.TODO(), path)
	require.NoError(t, err)
	assert.Equal(t, "export NIM_NAME=aix01\n", string(b))

	_, err = s.ReadFile(context.TODO(), filepath.Join(t.TempDir(), "missing"))
	var ce *CommandError
	assert.True(t, errors.As(err, &ce))
}

func TestSSH_StatFS(t *testing.T) {
	if _, err := exec.LookPath("df"); err != nil {
		t.Skip("df not available")
	}
	host, port, _ := startSSHServer(t)

	s, err := DialSSH(context.TODO(), SSHConfig{Host: host, Port: port, User: testUser, Password: testPassword})
	require.NoError(t, err)
	defer s.Close()

	st, err := s.StatFS(context.TODO(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), st.BlockSize)
	assert.NotZero(t, st.Blocks)
	assert.LessOrEqual(t, st.Available, st.Blocks)

	_, err = s.StatFS(context.TODO(), filepath.Join(t.TempDir(), "missing"))
	var ce *CommandError
	assert.True(t, errors.As(err, &ce))
}

func TestSSH_KnownHosts(t *testing.T) {
	host, port, hostKey := startSSHServer(t)
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	known := filepath.Join(t.TempDir(), "known_hosts")
	line := knownhosts.Line([]string{addr}, hostKey)
	require.NoError(t, os.WriteFile(known, []byte(line+"\n"), 0o600))

	s, err := DialSSH(context.TODO(), SSHConfig{
		Host: host, Port: port, User: testUser, Password: testPassword, KnownHostsFile: known,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, otherKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	otherSigner, err := ssh.NewSignerFromKey(otherKey)
	require.NoError(t, err)
	wrong := filepath.Join(t.TempDir(), "known_hosts")
	line = knownhosts.Line([]string{addr}, otherSigner.PublicKey())
	require.NoError(t, os.WriteFile(wrong, []byte(line+"\n"), 0o600))

	_, err = DialSSH(context.TODO(), SSHConfig{
		Host: host, Port: port, User: testUser, Password: testPassword, KnownHostsFile: wrong,
	})
	assert.Error(t, err)
}

func TestSSH_AuthFailure(t *testing.T) {
	host, port, _ := startSSHServer(t)

	_, err := DialSSH(context.TODO(), SSHConfig{Host: host, Port: port, User: testUser, Password: "wrong"})
	assert.Error(t, err)
}

func TestSSHConfig_ClientConfig(t *testing.T) {
	_, err := SSHConfig{Host: "h", User: "u"}.clientConfig()
	assert.Error(t, err, "no auth method")

	_, err = SSHConfig{Host: "h", User: "u", KeyFile: filepath.Join(t.TempDir(), "none")}.clientConfig()
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "id_bad")
	require.NoError(t, os.WriteFile(bad, []byte("not a key"), 0o600))
	_, err = SSHConfig{Host: "h", User: "u", KeyFile: bad}.clientConfig()
	assert.Error(t, err)

	cc, err := SSHConfig{Host: "h", User: "u", Password: "p"}.clientConfig()
	require.NoError(t, err)
	assert.Equal(t, "u", cc.User)
	assert.Len(t, cc.Auth, 2)
	assert.NotZero(t, cc.Timeout)

}
