package sap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"gate-app/config"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client talks to one company's SAP service layer. Construct once per
// company at startup and pass by reference, the client carries its own
// session state.
type Client struct {
	company config.SAPCompany
	http    *http.Client
	session string
}

func NewClient(company config.SAPCompany) *Client {
	return &Client{
		company: company,
		http: &http.Client{
			Timeout: time.Duration(config.SAPTimeoutSec) * time.Second,
		},
	}
}

func (c *Client) CompanyCode() string {
	return c.company.CompanyCode
}

type loginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

type loginResponse struct {
	SessionId string `json:"SessionId"`
}

// Login opens a service-layer session scoped to the company schema. The
// session cookie is kept on the client and sent with every later call.
func (c *Client) Login() error {
	body, _ := json.Marshal(loginRequest{
		CompanyDB: c.company.CompanyDB,
		UserName:  c.company.Username,
		Password:  c.company.Password,
	})

	resp, err := c.http.Post(c.company.ServiceLayerURL+"/Login", "application/json", bytes.NewReader(body))
	if err != nil {
		return c.classifyTransport("Login", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ValidationError{
			CompanyCode: c.company.CompanyCode,
			Op:          "Login",
			Message:     readErrorMessage(resp.Body),
		}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: "Login", Err: err}
	}
	c.session = lr.SessionId
	return nil
}

// doJSON sends a JSON request with the session cookie, logging in first when
// no session exists yet, and decodes the response into out when non-nil.
func (c *Client) doJSON(method, path string, payload interface{}, out interface{}) error {
	if c.session == "" {
		if err := c.Login(); err != nil {
			return err
		}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.company.ServiceLayerURL+path, body)
	if err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "B1SESSION", Value: c.session})

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classifyTransport(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &DataError{
			CompanyCode: c.company.CompanyCode,
			Op:          path,
			Err:         fmt.Errorf("status %d: %s", resp.StatusCode, readErrorMessage(resp.Body)),
		}
	}
	if resp.StatusCode >= 400 {
		return &ValidationError{
			CompanyCode: c.company.CompanyCode,
			Op:          path,
			Message:     readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
		}
	}
	return nil
}

// uploadFile posts one binary file as multipart form data.
func (c *Client) uploadFile(path, filePath string, out interface{}) error {
	if c.session == "" {
		if err := c.Login(); err != nil {
			return err
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
	}
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, c.company.ServiceLayerURL+path, &buf)
	if err != nil {
		return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "B1SESSION", Value: c.session})

	resp, err := c.http.Do(req)
	if err != nil {
		return c.classifyTransport(path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &DataError{
			CompanyCode: c.company.CompanyCode,
			Op:          path,
			Err:         fmt.Errorf("status %d: %s", resp.StatusCode, readErrorMessage(resp.Body)),
		}
	}
	if resp.StatusCode >= 400 {
		return &ValidationError{
			CompanyCode: c.company.CompanyCode,
			Op:          path,
			Message:     readErrorMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &DataError{CompanyCode: c.company.CompanyCode, Op: path, Err: err}
		}
	}
	return nil
}

// classifyTransport maps transport-level failures. Timeouts are always
// connection-class and therefore retryable.
func (c *Client) classifyTransport(op string, err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return &ConnectionError{CompanyCode: c.company.CompanyCode, Op: op, Err: err}
	}
	// url.Error wraps dial failures that do not implement net.Error
	return &ConnectionError{CompanyCode: c.company.CompanyCode, Op: op, Err: err}
}

type serviceLayerError struct {
	Error struct {
		Message struct {
			Value string `json:"value"`
		} `json:"message"`
	} `json:"error"`
}

func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var sle serviceLayerError
	if err := json.Unmarshal(raw, &sle); err == nil && sle.Error.Message.Value != "" {
		return sle.Error.Message.Value
	}
	return string(raw)
}
