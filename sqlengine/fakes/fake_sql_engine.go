package fakes

type FakeSQLEngine struct {
	OpenCalled   bool
	OpenAddress  string
	OpenPort     int64
	OpenDBName   string
	OpenUsername string
	OpenPassword string
	OpenError    error

	CloseCalled bool
	CloseError  error

	ExecuteCalled bool
	ExecuteQuery  string
	ExecuteRows   [][]interface{}
	ExecuteError  error
}

func (f *FakeSQLEngine) Open(address string, port int64, dbname string, username string, password string) error {
	f.OpenCalled = true
	f.OpenAddress = address
	f.OpenPort = port
	f.OpenDBName = dbname
	f.OpenUsername = username
	f.OpenPassword = password

	return f.OpenError
}

func (f *FakeSQLEngine) Close() error {
	f.CloseCalled = true

	return f.CloseError
}

func (f *FakeSQLEngine) Execute(query string) ([][]interface{}, error) {
	f.ExecuteCalled = true
	f.ExecuteQuery = query

	return f.ExecuteRows, f.ExecuteError
}

func (f *FakeSQLEngine) URI(address string, port int64, dbname string, username string, password string) string {
	return "fake-uri"
}

func (f *FakeSQLEngine) JDBCURI(address string, port int64, dbname string, username string, password string) string {
	return "fake-jdbc-uri"
}
