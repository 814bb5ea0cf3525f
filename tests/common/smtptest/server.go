package smtptest

import (
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Mail is one message accepted by the Server.
type Mail struct {
	From string
	To   []string
	Data string
}

// Server is a minimal SMTP relay listening on 127.0.0.1 that accepts every message.
type Server struct {
	ln       net.Listener
	startTLS bool
	silent   bool

	mu     sync.Mutex
	mails  []Mail
	conns  []net.Conn
	closed bool
	wg     sync.WaitGroup
}

type Option func(*Server)

// WithStartTLS advertises STARTTLS in the EHLO reply without supporting it.
func WithStartTLS() Option {
	return func(s *Server) { s.startTLS = true }
}

// Silent accepts connections and never answers, like a stalled relay.
func Silent() Option {
	return func(s *Server) { s.silent = true }
}

func NewServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("smtptest: listen: %v", err)
	}
	s := &Server{ln: ln}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.accept()
	t.Cleanup(s.Close)
	return s
}

func (s *Server) Host() string {
	return s.ln.Addr().(*net.TCPAddr).IP.String()
}

func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.Host(), strconv.Itoa(s.Port()))
}

func (s *Server) Mails() []Mail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Mail(nil), s.mails...)
}

func (s *Server) Close() {
	_ = s.ln.Close()
	s.mu.Lock()
	s.closed = true
	for _, c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Server) accept() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			_ = conn.Close()
			return
		}
		s.conns = append(s.conns, conn)
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			if s.silent {
				_, _ = conn.Read(make([]byte, 1))
				return
			}
			s.serve(conn)
		}()
	}
}

func (s *Server) serve(conn net.Conn) {
	tp := textproto.NewConn(conn)
	reply := func(format string, args ...any) bool {
		return tp.PrintfLine(format, args...) == nil
	}

	if !reply("220 smtptest ESMTP") {
		return
	}

	var cur Mail
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		verb, arg, _ := strings.Cut(line, " ")

		switch strings.ToUpper(verb) {
		case "EHLO", "HELO":
			if s.startTLS {
				reply("250-smtptest")
				reply("250 STARTTLS")
			} else {
				reply("250 smtptest")
			}
		case "MAIL":
			cur = Mail{From: addrArg(arg)}
			reply("250 OK")
		case "RCPT":
			cur.To = append(cur.To, addrArg(arg))
			reply("250 OK")
		case "DATA":
			reply("354 end with <CRLF>.<CRLF>")
			data, err := tp.ReadDotBytes()
			if err != nil {
				return
			}
			cur.Data = string(data)
			s.mu.Lock()
			s.mails = append(s.mails, cur)
			s.mu.Unlock()
			cur = Mail{}
			reply("250 OK queued")
		case "RSET", "NOOP":
			reply("250 OK")
		case "QUIT":
			reply("221 bye")
			return
		default:
			reply("502 not implemented")
		}
	}
}

// addrArg extracts the address from "FROM:<a@b>" or "TO:<a@b> BODY=8BITMIME".
func addrArg(arg string) string {
	_, v, _ := strings.Cut(arg, ":")
	v, _, _ = strings.Cut(strings.TrimSpace(v), " ")
	return strings.Trim(v, "<>")
}
