package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// Server is a minimal exec-only SSH server for tests. It accepts any client
// without authentication, records every exec command it receives, and
// replies with canned stdout/stderr and a zero exit status.
type Server struct {
	Addr   string
	Stdout []byte
	Stderr []byte

	ln       net.Listener
	mu       sync.Mutex
	commands []string
}

// Start listens on an ephemeral loopback port and serves until Stop is
// called. The canned stdout/stderr bytes are written on every exec request.
func Start(stdout, stderr []byte) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	cfg := &ssh.ServerConfig{NoClientAuth: true}
	cfg.AddHostKey(signer)

	s := &Server{Addr: ln.Addr().String(), Stdout: stdout, Stderr: stderr, ln: ln}
	go s.acceptLoop(cfg)
	return s, nil
}

// Stop closes the listener. In-flight sessions are abandoned.
func (s *Server) Stop() {
	_ = s.ln.Close()
}

// Commands returns a copy of the exec commands received so far.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commands))
	copy(out, s.commands)
	return out
}

func (s *Server) record(cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, cmd)
}

func (s *Server) acceptLoop(cfg *ssh.ServerConfig) {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn, cfg)
	}
}

func (s *Server) handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, chReqs)
	}
}

// execPayload matches the wire format of an "exec" channel request.
type execPayload struct {
	Command string
}

// exitStatus matches the wire format of an "exit-status" channel request.
type exitStatus struct {
	Status uint32
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		switch req.Type {
		case "exec":
			var p execPayload
			if err := ssh.Unmarshal(req.Payload, &p); err != nil {
				_ = req.Reply(false, nil)
				continue
			}
			s.record(p.Command)
			_ = req.Reply(true, nil)
			if len(s.Stdout) > 0 {
				_, _ = ch.Write(s.Stdout)
			}
			if len(s.Stderr) > 0 {
				_, _ = ch.Stderr().Write(s.Stderr)
			}
			_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(exitStatus{Status: 0}))
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}
