package config

// DefaultConfigYAML cấu hình mặc định nhúng sẵn trong binary,
// file cấu hình ngoài và biến môi trường có thể ghi đè từng mục
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"

database:
  host: "localhost"
  port: "3306"
  username: "nhatro"
  password: "nhatro"
  dbname: "nhatro"
  charset: "utf8mb4"

client:
  base_url: "http://localhost:8080"
  timeout_seconds: 5
  retry_attempts: 3
  retry_delay_ms: 1000
`)
