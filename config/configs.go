package config

import (
	"encoding/xml"
	"fmt"
	"os"
)

var MainRouter string
var DSN string
var Driver string
var Dbname string
var SqlitePath string
var DefaultLang string
var MainConfig Config

type Config struct {
	XMLName     xml.Name `xml:"config"`
	MainRouter  string   `xml:"MainRouter"`
	Driver      string   `xml:"driver"`
	Dbname      string   `xml:"dbname"`
	Host        string   `xml:"host"`
	Port        string   `xml:"port"`
	Username    string   `xml:"user"`
	Password    string   `xml:"password"`
	SqlitePath  string   `xml:"sqlitepath"`
	DefaultLang string   `xml:"defaultlang"`
}

func init() {

	xmlFile, err := os.Open("config.xml")
	if err != nil {
		fmt.Println("Error  opening  file:", err)
		// 没有配置文件时回退到sqlite，方便本地调试和测试
		Driver = "sqlite"
		SqlitePath = "dataatlas.db"
		DefaultLang = "en"
		MainRouter = ":8080"
		return
	}
	defer xmlFile.Close()

	xmlDecoder := xml.NewDecoder(xmlFile)
	err = xmlDecoder.Decode(&MainConfig)
	if err != nil {
		fmt.Println("Error  decoding  XML:", err)
		return
	}
	MainRouter = MainConfig.MainRouter
	Driver = MainConfig.Driver
	Dbname = MainConfig.Dbname
	SqlitePath = MainConfig.SqlitePath
	DefaultLang = MainConfig.DefaultLang
	if Driver == "" {
		Driver = "postgres"
	}
	if DefaultLang == "" {
		DefaultLang = "en"
	}
	if MainRouter == "" {
		MainRouter = ":8080"
	}

	DSN = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC", MainConfig.Host, MainConfig.Username, MainConfig.Password, MainConfig.Dbname, MainConfig.Port)

}
